package service

import (
	"context"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
)

// FeedService computes the read API: the reader feed plus the per-publisher
// and per-journalist approved-article listings. All operations are pure reads
// and recompute identically for the same underlying state.
type FeedService struct {
	userRepo    repository.UserRepository
	subRepo     repository.SubscriptionRepository
	articleRepo repository.ArticleRepository
	cacheTTL    time.Duration
}

// NewFeedService creates a new feed service. cacheTTL of zero disables the
// Redis cache-aside layer.
func NewFeedService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
	articleRepo repository.ArticleRepository,
	cacheTTL time.Duration,
) *FeedService {
	return &FeedService{
		userRepo:    userRepo,
		subRepo:     subRepo,
		articleRepo: articleRepo,
		cacheTTL:    cacheTTL,
	}
}

// ReaderFeed returns every approved article from the reader's subscribed
// publishers or subscribed journalists, most recent first.
func (s *FeedService) ReaderFeed(ctx context.Context, readerID uint) ([]models.Article, error) {
	reader, err := s.userRepo.GetByID(ctx, readerID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(reader, models.RoleReader); err != nil {
		return nil, err
	}

	publisherIDs, err := s.subRepo.PublisherIDs(ctx, readerID)
	if err != nil {
		return nil, err
	}
	journalistIDs, err := s.subRepo.JournalistIDs(ctx, readerID)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL <= 0 {
		return s.articleRepo.Feed(ctx, publisherIDs, journalistIDs)
	}

	key := cache.FeedKey(readerID, cache.FeedVersion(ctx))
	var articles []models.Article
	hit := true
	err = cache.CacheAside(ctx, key, &articles, s.cacheTTL, func() error {
		hit = false
		var fetchErr error
		articles, fetchErr = s.articleRepo.Feed(ctx, publisherIDs, journalistIDs)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if hit {
		observability.FeedRequestsTotal.WithLabelValues("hit").Inc()
	} else {
		observability.FeedRequestsTotal.WithLabelValues("miss").Inc()
	}
	return articles, nil
}

// PublisherArticles returns a publisher's approved articles, most recent first.
func (s *FeedService) PublisherArticles(ctx context.Context, publisherID uint) ([]models.Article, error) {
	return s.articleRepo.ListApprovedByPublisher(ctx, publisherID)
}

// JournalistArticles returns a journalist's approved articles, most recent first.
func (s *FeedService) JournalistArticles(ctx context.Context, journalistID uint) ([]models.Article, error) {
	return s.articleRepo.ListApprovedByAuthor(ctx, journalistID)
}
