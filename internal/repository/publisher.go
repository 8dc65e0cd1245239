package repository

import (
	"context"
	"errors"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// PublisherRepository defines the interface for publisher data operations
type PublisherRepository interface {
	Create(ctx context.Context, publisher *models.Publisher) error
	GetByID(ctx context.Context, id uint) (*models.Publisher, error)
	GetByName(ctx context.Context, name string) (*models.Publisher, error)
	List(ctx context.Context, limit, offset int) ([]models.Publisher, error)
	AddEditor(ctx context.Context, publisherID, userID uint) error
	AddJournalist(ctx context.Context, publisherID, userID uint) error
}

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository creates a new publisher repository
func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

// Create inserts a publisher. A unique-name constraint violation propagates
// unchanged as a store-layer error.
func (r *publisherRepository) Create(ctx context.Context, publisher *models.Publisher) error {
	return r.db.WithContext(ctx).Create(publisher).Error
}

func (r *publisherRepository) GetByID(ctx context.Context, id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := r.db.WithContext(ctx).First(&publisher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Publisher", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &publisher, nil
}

func (r *publisherRepository) GetByName(ctx context.Context, name string) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&publisher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &publisher, nil
}

func (r *publisherRepository) List(ctx context.Context, limit, offset int) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) AddEditor(ctx context.Context, publisherID, userID uint) error {
	publisher := models.Publisher{ID: publisherID}
	return r.db.WithContext(ctx).
		Model(&publisher).
		Association("Editors").
		Append(&models.User{ID: userID})
}

func (r *publisherRepository) AddJournalist(ctx context.Context, publisherID, userID uint) error {
	publisher := models.Publisher{ID: publisherID}
	return r.db.WithContext(ctx).
		Model(&publisher).
		Association("Journalists").
		Append(&models.User{ID: userID})
}
