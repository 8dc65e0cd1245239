package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository manages the reader-side subscription associations.
// Rows live in the two many-to-many join tables; racing toggles on the same
// pair resolve through the store's transaction isolation.
type SubscriptionRepository interface {
	HasPublisher(ctx context.Context, readerID, publisherID uint) (bool, error)
	AddPublisher(ctx context.Context, readerID, publisherID uint) error
	RemovePublisher(ctx context.Context, readerID, publisherID uint) error

	HasJournalist(ctx context.Context, readerID, journalistID uint) (bool, error)
	AddJournalist(ctx context.Context, readerID, journalistID uint) error
	RemoveJournalist(ctx context.Context, readerID, journalistID uint) error

	// PublisherIDs and JournalistIDs return the reader's subscription sets
	// as plain ID slices for feed computation.
	PublisherIDs(ctx context.Context, readerID uint) ([]uint, error)
	JournalistIDs(ctx context.Context, readerID uint) ([]uint, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) HasPublisher(ctx context.Context, readerID, publisherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("reader_publisher_subscriptions").
		Where("user_id = ? AND publisher_id = ?", readerID, publisherID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) AddPublisher(ctx context.Context, readerID, publisherID uint) error {
	reader := models.User{ID: readerID}
	return r.db.WithContext(ctx).
		Model(&reader).
		Association("SubscribedPublishers").
		Append(&models.Publisher{ID: publisherID})
}

func (r *subscriptionRepository) RemovePublisher(ctx context.Context, readerID, publisherID uint) error {
	reader := models.User{ID: readerID}
	return r.db.WithContext(ctx).
		Model(&reader).
		Association("SubscribedPublishers").
		Delete(&models.Publisher{ID: publisherID})
}

func (r *subscriptionRepository) HasJournalist(ctx context.Context, readerID, journalistID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("reader_journalist_subscriptions").
		Where("reader_id = ? AND journalist_id = ?", readerID, journalistID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) AddJournalist(ctx context.Context, readerID, journalistID uint) error {
	reader := models.User{ID: readerID}
	return r.db.WithContext(ctx).
		Model(&reader).
		Association("SubscribedJournalists").
		Append(&models.User{ID: journalistID})
}

func (r *subscriptionRepository) RemoveJournalist(ctx context.Context, readerID, journalistID uint) error {
	reader := models.User{ID: readerID}
	return r.db.WithContext(ctx).
		Model(&reader).
		Association("SubscribedJournalists").
		Delete(&models.User{ID: journalistID})
}

func (r *subscriptionRepository) PublisherIDs(ctx context.Context, readerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Table("reader_publisher_subscriptions").
		Where("user_id = ?", readerID).
		Pluck("publisher_id", &ids).Error
	return ids, err
}

func (r *subscriptionRepository) JournalistIDs(ctx context.Context, readerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Table("reader_journalist_subscriptions").
		Where("reader_id = ?", readerID).
		Pluck("journalist_id", &ids).Error
	return ids, err
}
