package repository

import (
	"context"
	"errors"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// NewsletterRepository defines the interface for newsletter data operations
type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *models.Newsletter) error
	GetByID(ctx context.Context, id uint) (*models.Newsletter, error)
	Update(ctx context.Context, newsletter *models.Newsletter) error
	Delete(ctx context.Context, id uint) error
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error)
	ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter) error {
	return r.db.WithContext(ctx).Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Publisher").
		First(&newsletter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Newsletter", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &newsletter, nil
}

func (r *newsletterRepository) Update(ctx context.Context, newsletter *models.Newsletter) error {
	return r.db.WithContext(ctx).
		Model(newsletter).
		Updates(map[string]interface{}{
			"title":        newsletter.Title,
			"content":      newsletter.Content,
			"publisher_id": newsletter.PublisherID,
		}).Error
}

func (r *newsletterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Newsletter{}, id).Error
}

func (r *newsletterRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id ASC").
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND publisher_id IS NULL", authorID).
		Order("created_at DESC, id ASC").
		Find(&newsletters).Error
	return newsletters, err
}
