package repository

import (
	"context"
	"errors"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Article, error)
	// ListIndependentByAuthor materializes the author's independent-article
	// set as a filter over authored content; independence is never stored.
	ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Article, error)
	ListPending(ctx context.Context) ([]models.Article, error)
	SetApproved(ctx context.Context, id uint) error
	// Feed returns approved articles visible to a reader subscribed to the
	// given publishers and journalists, most recent first, ties broken by
	// insertion order.
	Feed(ctx context.Context, publisherIDs, journalistIDs []uint) ([]models.Article, error)
	ListApprovedByPublisher(ctx context.Context, publisherID uint) ([]models.Article, error)
	ListApprovedByAuthor(ctx context.Context, authorID uint) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Publisher").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	// An explicit column map so that publisher_id transitions to NULL are
	// persisted; Updates with a struct skips zero values.
	return r.db.WithContext(ctx).
		Model(article).
		Updates(map[string]interface{}{
			"title":        article.Title,
			"content":      article.Content,
			"publisher_id": article.PublisherID,
		}).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

func (r *articleRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND publisher_id IS NULL", authorID).
		Order("created_at DESC, id ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListPending(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Publisher").
		Where("approved = ?", false).
		Order("created_at DESC, id ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) SetApproved(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Update("approved", true).Error
}

func (r *articleRepository) Feed(ctx context.Context, publisherIDs, journalistIDs []uint) ([]models.Article, error) {
	var articles []models.Article

	q := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Publisher").
		Where("approved = ?", true)

	switch {
	case len(publisherIDs) > 0 && len(journalistIDs) > 0:
		q = q.Where("publisher_id IN ? OR author_id IN ?", publisherIDs, journalistIDs)
	case len(publisherIDs) > 0:
		q = q.Where("publisher_id IN ?", publisherIDs)
	case len(journalistIDs) > 0:
		q = q.Where("author_id IN ?", journalistIDs)
	default:
		// No subscriptions, no feed.
		return []models.Article{}, nil
	}

	err := q.Order("created_at DESC, id ASC").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListApprovedByPublisher(ctx context.Context, publisherID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("approved = ? AND publisher_id = ?", true, publisherID).
		Order("created_at DESC, id ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListApprovedByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Where("approved = ? AND author_id = ?", true, authorID).
		Order("created_at DESC, id ASC").
		Find(&articles).Error
	return articles, err
}
