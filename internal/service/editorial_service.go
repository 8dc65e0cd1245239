package service

import (
	"context"

	"newsroom/internal/cache"
	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
)

// EditorialService implements the article approval workflow. An article has
// two states: draft (approved=false) and published (approved=true), with a
// single one-way transition triggered here.
type EditorialService struct {
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
}

// NewEditorialService creates a new editorial service.
func NewEditorialService(userRepo repository.UserRepository, articleRepo repository.ArticleRepository) *EditorialService {
	return &EditorialService{userRepo: userRepo, articleRepo: articleRepo}
}

// ApproveArticle publishes a draft article. Approving an already-approved
// article is a no-op, not an error.
func (s *EditorialService) ApproveArticle(ctx context.Context, editorID, articleID uint) (*models.Article, error) {
	editor, err := s.userRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(editor, models.RoleEditor); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.Approved {
		return article, nil
	}

	if err := s.articleRepo.SetApproved(ctx, articleID); err != nil {
		return nil, err
	}
	observability.ArticlesApprovedTotal.Inc()

	// Approval is the only mutation that adds entries to reader feeds.
	cache.BumpFeedVersion(ctx)

	return s.articleRepo.GetByID(ctx, articleID)
}

// ListPending returns all unapproved articles, most recent first. Editor-only.
func (s *EditorialService) ListPending(ctx context.Context, editorID uint) ([]models.Article, error) {
	editor, err := s.userRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(editor, models.RoleEditor); err != nil {
		return nil, err
	}
	return s.articleRepo.ListPending(ctx)
}
