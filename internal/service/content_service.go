package service

import (
	"context"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// ContentService owns journalist-authored content. Authors are immutable
// after creation, and only the author may edit or delete a piece; editors and
// everyone else are refused even when the boundary layer fails to stop them.
type ContentService struct {
	userRepo       repository.UserRepository
	articleRepo    repository.ArticleRepository
	newsletterRepo repository.NewsletterRepository
	publisherRepo  repository.PublisherRepository
}

// CreateContentInput carries the fields shared by article and newsletter creation.
type CreateContentInput struct {
	AuthorID    uint
	Title       string
	Content     string
	PublisherID *uint
}

// UpdateContentInput carries an edit by CallerID. A nil PublisherID together
// with ClearPublisher=true detaches the content from its publisher, making it
// independent.
type UpdateContentInput struct {
	CallerID       uint
	Title          string
	Content        string
	PublisherID    *uint
	ClearPublisher bool
}

// NewContentService creates a new content service.
func NewContentService(
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	newsletterRepo repository.NewsletterRepository,
	publisherRepo repository.PublisherRepository,
) *ContentService {
	return &ContentService{
		userRepo:       userRepo,
		articleRepo:    articleRepo,
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
	}
}

func (s *ContentService) validateCreate(ctx context.Context, in CreateContentInput) error {
	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		return err
	}
	if err := requireRole(author, models.RoleJournalist); err != nil {
		return err
	}
	if in.Title == "" || in.Content == "" {
		return models.NewValidationError("Title and content are required")
	}
	if in.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(ctx, *in.PublisherID); err != nil {
			return err
		}
	}
	return nil
}

// CreateArticle creates a draft article. Articles always start unapproved.
func (s *ContentService) CreateArticle(ctx context.Context, in CreateContentInput) (*models.Article, error) {
	if err := s.validateCreate(ctx, in); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       in.Title,
		Content:     in.Content,
		AuthorID:    in.AuthorID,
		PublisherID: in.PublisherID,
		Approved:    false,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle edits title, content, or publisher. Author-only; the author
// field itself is never touched.
func (s *ContentService) UpdateArticle(ctx context.Context, articleID uint, in UpdateContentInput) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != in.CallerID {
		return nil, models.NewForbiddenError("Only the author may modify this article")
	}

	if err := s.applyContentUpdate(ctx, in, &article.Title, &article.Content, &article.PublisherID); err != nil {
		return nil, err
	}
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(ctx, articleID)
}

// DeleteArticle removes an article in any approval state. Author-only.
func (s *ContentService) DeleteArticle(ctx context.Context, callerID, articleID uint) error {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID {
		return models.NewForbiddenError("Only the author may delete this article")
	}
	return s.articleRepo.Delete(ctx, articleID)
}

// ListMyArticles returns the caller's authored articles, most recent first.
func (s *ContentService) ListMyArticles(ctx context.Context, authorID uint) ([]models.Article, error) {
	return s.articleRepo.ListByAuthor(ctx, authorID)
}

// ListMyIndependentArticles returns the caller's articles with no publisher.
func (s *ContentService) ListMyIndependentArticles(ctx context.Context, authorID uint) ([]models.Article, error) {
	return s.articleRepo.ListIndependentByAuthor(ctx, authorID)
}

// CreateNewsletter creates a newsletter; newsletters need no approval.
func (s *ContentService) CreateNewsletter(ctx context.Context, in CreateContentInput) (*models.Newsletter, error) {
	if err := s.validateCreate(ctx, in); err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Title:       in.Title,
		Content:     in.Content,
		AuthorID:    in.AuthorID,
		PublisherID: in.PublisherID,
	}
	if err := s.newsletterRepo.Create(ctx, newsletter); err != nil {
		return nil, err
	}
	return newsletter, nil
}

// UpdateNewsletter edits title, content, or publisher. Author-only.
func (s *ContentService) UpdateNewsletter(ctx context.Context, newsletterID uint, in UpdateContentInput) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if newsletter.AuthorID != in.CallerID {
		return nil, models.NewForbiddenError("Only the author may modify this newsletter")
	}

	if err := s.applyContentUpdate(ctx, in, &newsletter.Title, &newsletter.Content, &newsletter.PublisherID); err != nil {
		return nil, err
	}
	if err := s.newsletterRepo.Update(ctx, newsletter); err != nil {
		return nil, err
	}
	return s.newsletterRepo.GetByID(ctx, newsletterID)
}

// DeleteNewsletter removes a newsletter. Author-only.
func (s *ContentService) DeleteNewsletter(ctx context.Context, callerID, newsletterID uint) error {
	newsletter, err := s.newsletterRepo.GetByID(ctx, newsletterID)
	if err != nil {
		return err
	}
	if newsletter.AuthorID != callerID {
		return models.NewForbiddenError("Only the author may delete this newsletter")
	}
	return s.newsletterRepo.Delete(ctx, newsletterID)
}

// ListMyNewsletters returns the caller's authored newsletters, most recent first.
func (s *ContentService) ListMyNewsletters(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	return s.newsletterRepo.ListByAuthor(ctx, authorID)
}

// ListMyIndependentNewsletters returns the caller's newsletters with no publisher.
func (s *ContentService) ListMyIndependentNewsletters(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	return s.newsletterRepo.ListIndependentByAuthor(ctx, authorID)
}

// applyContentUpdate mutates the given fields in place according to the
// input. Publisher membership in the author's independent set is derived from
// the publisher_id column, so detaching a publisher is the whole transition.
func (s *ContentService) applyContentUpdate(ctx context.Context, in UpdateContentInput, title, content *string, publisherID **uint) error {
	if in.Title != "" {
		*title = in.Title
	}
	if in.Content != "" {
		*content = in.Content
	}
	switch {
	case in.ClearPublisher:
		*publisherID = nil
	case in.PublisherID != nil:
		if _, err := s.publisherRepo.GetByID(ctx, *in.PublisherID); err != nil {
			return err
		}
		*publisherID = in.PublisherID
	}
	return nil
}
