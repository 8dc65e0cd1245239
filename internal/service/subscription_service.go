package service

import (
	"context"

	"newsroom/internal/cache"
	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// SubscriptionService toggles reader subscriptions to publishers and
// journalists. Each toggle is an idempotent involution: applying it twice
// restores the prior subscription set.
type SubscriptionService struct {
	userRepo      repository.UserRepository
	subRepo       repository.SubscriptionRepository
	publisherRepo repository.PublisherRepository
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
	publisherRepo repository.PublisherRepository,
) *SubscriptionService {
	return &SubscriptionService{
		userRepo:      userRepo,
		subRepo:       subRepo,
		publisherRepo: publisherRepo,
	}
}

// TogglePublisher flips the reader's subscription to the publisher.
// Returns true when the call resulted in a subscription, false when it
// removed one.
func (s *SubscriptionService) TogglePublisher(ctx context.Context, readerID, publisherID uint) (bool, error) {
	reader, err := s.userRepo.GetByID(ctx, readerID)
	if err != nil {
		return false, err
	}
	if err := requireRole(reader, models.RoleReader); err != nil {
		return false, err
	}

	if _, err := s.publisherRepo.GetByID(ctx, publisherID); err != nil {
		return false, err
	}

	subscribed, err := s.subRepo.HasPublisher(ctx, readerID, publisherID)
	if err != nil {
		return false, err
	}
	if subscribed {
		if err := s.subRepo.RemovePublisher(ctx, readerID, publisherID); err != nil {
			return false, err
		}
		cache.InvalidateFeed(ctx, readerID)
		return false, nil
	}
	if err := s.subRepo.AddPublisher(ctx, readerID, publisherID); err != nil {
		return false, err
	}
	cache.InvalidateFeed(ctx, readerID)
	return true, nil
}

// ToggleJournalist flips the reader's subscription to the journalist. The
// target must currently hold the journalist role.
func (s *SubscriptionService) ToggleJournalist(ctx context.Context, readerID, journalistID uint) (bool, error) {
	reader, err := s.userRepo.GetByID(ctx, readerID)
	if err != nil {
		return false, err
	}
	if err := requireRole(reader, models.RoleReader); err != nil {
		return false, err
	}

	target, err := s.userRepo.GetByID(ctx, journalistID)
	if err != nil {
		return false, err
	}
	if !target.IsJournalist() {
		return false, models.NewValidationError("Subscription target is not a journalist")
	}

	subscribed, err := s.subRepo.HasJournalist(ctx, readerID, journalistID)
	if err != nil {
		return false, err
	}
	if subscribed {
		if err := s.subRepo.RemoveJournalist(ctx, readerID, journalistID); err != nil {
			return false, err
		}
		cache.InvalidateFeed(ctx, readerID)
		return false, nil
	}
	if err := s.subRepo.AddJournalist(ctx, readerID, journalistID); err != nil {
		return false, err
	}
	cache.InvalidateFeed(ctx, readerID)
	return true, nil
}
