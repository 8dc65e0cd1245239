package service

import (
	"context"
	"errors"
	"testing"

	"newsroom/internal/models"
)

// Function-field stubs for every repository interface. Tests override only
// the calls they care about; the rest default to benign no-ops.

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	listFn             func(context.Context, int, int) ([]models.User, error)
	setRoleFn          func(context.Context, uint, models.Role) error
	replaceRoleGroupFn func(context.Context, uint, string) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) SetRole(ctx context.Context, userID uint, role models.Role) error {
	return s.setRoleFn(ctx, userID, role)
}
func (s *userRepoStub) ReplaceRoleGroup(ctx context.Context, userID uint, groupName string) error {
	return s.replaceRoleGroupFn(ctx, userID, groupName)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		setRoleFn:          func(context.Context, uint, models.Role) error { return nil },
		replaceRoleGroupFn: func(context.Context, uint, string) error { return nil },
	}
}

type publisherRepoStub struct {
	createFn        func(context.Context, *models.Publisher) error
	getByIDFn       func(context.Context, uint) (*models.Publisher, error)
	getByNameFn     func(context.Context, string) (*models.Publisher, error)
	listFn          func(context.Context, int, int) ([]models.Publisher, error)
	addEditorFn     func(context.Context, uint, uint) error
	addJournalistFn func(context.Context, uint, uint) error
}

func (s *publisherRepoStub) Create(ctx context.Context, p *models.Publisher) error {
	return s.createFn(ctx, p)
}
func (s *publisherRepoStub) GetByID(ctx context.Context, id uint) (*models.Publisher, error) {
	return s.getByIDFn(ctx, id)
}
func (s *publisherRepoStub) GetByName(ctx context.Context, name string) (*models.Publisher, error) {
	return s.getByNameFn(ctx, name)
}
func (s *publisherRepoStub) List(ctx context.Context, limit, offset int) ([]models.Publisher, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *publisherRepoStub) AddEditor(ctx context.Context, publisherID, userID uint) error {
	return s.addEditorFn(ctx, publisherID, userID)
}
func (s *publisherRepoStub) AddJournalist(ctx context.Context, publisherID, userID uint) error {
	return s.addJournalistFn(ctx, publisherID, userID)
}

func noopPublisherRepo() *publisherRepoStub {
	return &publisherRepoStub{
		createFn: func(context.Context, *models.Publisher) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Publisher, error) {
			return &models.Publisher{ID: id, Name: "Publisher"}, nil
		},
		getByNameFn:     func(context.Context, string) (*models.Publisher, error) { return nil, nil },
		listFn:          func(context.Context, int, int) ([]models.Publisher, error) { return nil, nil },
		addEditorFn:     func(context.Context, uint, uint) error { return nil },
		addJournalistFn: func(context.Context, uint, uint) error { return nil },
	}
}

type subscriptionRepoStub struct {
	hasPublisherFn     func(context.Context, uint, uint) (bool, error)
	addPublisherFn     func(context.Context, uint, uint) error
	removePublisherFn  func(context.Context, uint, uint) error
	hasJournalistFn    func(context.Context, uint, uint) (bool, error)
	addJournalistFn    func(context.Context, uint, uint) error
	removeJournalistFn func(context.Context, uint, uint) error
	publisherIDsFn     func(context.Context, uint) ([]uint, error)
	journalistIDsFn    func(context.Context, uint) ([]uint, error)
}

func (s *subscriptionRepoStub) HasPublisher(ctx context.Context, readerID, publisherID uint) (bool, error) {
	return s.hasPublisherFn(ctx, readerID, publisherID)
}
func (s *subscriptionRepoStub) AddPublisher(ctx context.Context, readerID, publisherID uint) error {
	return s.addPublisherFn(ctx, readerID, publisherID)
}
func (s *subscriptionRepoStub) RemovePublisher(ctx context.Context, readerID, publisherID uint) error {
	return s.removePublisherFn(ctx, readerID, publisherID)
}
func (s *subscriptionRepoStub) HasJournalist(ctx context.Context, readerID, journalistID uint) (bool, error) {
	return s.hasJournalistFn(ctx, readerID, journalistID)
}
func (s *subscriptionRepoStub) AddJournalist(ctx context.Context, readerID, journalistID uint) error {
	return s.addJournalistFn(ctx, readerID, journalistID)
}
func (s *subscriptionRepoStub) RemoveJournalist(ctx context.Context, readerID, journalistID uint) error {
	return s.removeJournalistFn(ctx, readerID, journalistID)
}
func (s *subscriptionRepoStub) PublisherIDs(ctx context.Context, readerID uint) ([]uint, error) {
	return s.publisherIDsFn(ctx, readerID)
}
func (s *subscriptionRepoStub) JournalistIDs(ctx context.Context, readerID uint) ([]uint, error) {
	return s.journalistIDsFn(ctx, readerID)
}

func noopSubscriptionRepo() *subscriptionRepoStub {
	return &subscriptionRepoStub{
		hasPublisherFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		addPublisherFn:     func(context.Context, uint, uint) error { return nil },
		removePublisherFn:  func(context.Context, uint, uint) error { return nil },
		hasJournalistFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		addJournalistFn:    func(context.Context, uint, uint) error { return nil },
		removeJournalistFn: func(context.Context, uint, uint) error { return nil },
		publisherIDsFn:     func(context.Context, uint) ([]uint, error) { return nil, nil },
		journalistIDsFn:    func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type articleRepoStub struct {
	createFn                  func(context.Context, *models.Article) error
	getByIDFn                 func(context.Context, uint) (*models.Article, error)
	updateFn                  func(context.Context, *models.Article) error
	deleteFn                  func(context.Context, uint) error
	listByAuthorFn            func(context.Context, uint) ([]models.Article, error)
	listIndependentByAuthorFn func(context.Context, uint) ([]models.Article, error)
	listPendingFn             func(context.Context) ([]models.Article, error)
	setApprovedFn             func(context.Context, uint) error
	feedFn                    func(context.Context, []uint, []uint) ([]models.Article, error)
	listApprovedByPublisherFn func(context.Context, uint) ([]models.Article, error)
	listApprovedByAuthorFn    func(context.Context, uint) ([]models.Article, error)
}

func (s *articleRepoStub) Create(ctx context.Context, a *models.Article) error {
	return s.createFn(ctx, a)
}
func (s *articleRepoStub) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	return s.getByIDFn(ctx, id)
}
func (s *articleRepoStub) Update(ctx context.Context, a *models.Article) error {
	return s.updateFn(ctx, a)
}
func (s *articleRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *articleRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *articleRepoStub) ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	return s.listIndependentByAuthorFn(ctx, authorID)
}
func (s *articleRepoStub) ListPending(ctx context.Context) ([]models.Article, error) {
	return s.listPendingFn(ctx)
}
func (s *articleRepoStub) SetApproved(ctx context.Context, id uint) error {
	return s.setApprovedFn(ctx, id)
}
func (s *articleRepoStub) Feed(ctx context.Context, publisherIDs, journalistIDs []uint) ([]models.Article, error) {
	return s.feedFn(ctx, publisherIDs, journalistIDs)
}
func (s *articleRepoStub) ListApprovedByPublisher(ctx context.Context, publisherID uint) ([]models.Article, error) {
	return s.listApprovedByPublisherFn(ctx, publisherID)
}
func (s *articleRepoStub) ListApprovedByAuthor(ctx context.Context, authorID uint) ([]models.Article, error) {
	return s.listApprovedByAuthorFn(ctx, authorID)
}

func noopArticleRepo() *articleRepoStub {
	return &articleRepoStub{
		createFn:                  func(context.Context, *models.Article) error { return nil },
		getByIDFn:                 func(_ context.Context, id uint) (*models.Article, error) { return &models.Article{ID: id}, nil },
		updateFn:                  func(context.Context, *models.Article) error { return nil },
		deleteFn:                  func(context.Context, uint) error { return nil },
		listByAuthorFn:            func(context.Context, uint) ([]models.Article, error) { return nil, nil },
		listIndependentByAuthorFn: func(context.Context, uint) ([]models.Article, error) { return nil, nil },
		listPendingFn:             func(context.Context) ([]models.Article, error) { return nil, nil },
		setApprovedFn:             func(context.Context, uint) error { return nil },
		feedFn:                    func(context.Context, []uint, []uint) ([]models.Article, error) { return nil, nil },
		listApprovedByPublisherFn: func(context.Context, uint) ([]models.Article, error) { return nil, nil },
		listApprovedByAuthorFn:    func(context.Context, uint) ([]models.Article, error) { return nil, nil },
	}
}

type newsletterRepoStub struct {
	createFn                  func(context.Context, *models.Newsletter) error
	getByIDFn                 func(context.Context, uint) (*models.Newsletter, error)
	updateFn                  func(context.Context, *models.Newsletter) error
	deleteFn                  func(context.Context, uint) error
	listByAuthorFn            func(context.Context, uint) ([]models.Newsletter, error)
	listIndependentByAuthorFn func(context.Context, uint) ([]models.Newsletter, error)
}

func (s *newsletterRepoStub) Create(ctx context.Context, n *models.Newsletter) error {
	return s.createFn(ctx, n)
}
func (s *newsletterRepoStub) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	return s.getByIDFn(ctx, id)
}
func (s *newsletterRepoStub) Update(ctx context.Context, n *models.Newsletter) error {
	return s.updateFn(ctx, n)
}
func (s *newsletterRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *newsletterRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *newsletterRepoStub) ListIndependentByAuthor(ctx context.Context, authorID uint) ([]models.Newsletter, error) {
	return s.listIndependentByAuthorFn(ctx, authorID)
}

func noopNewsletterRepo() *newsletterRepoStub {
	return &newsletterRepoStub{
		createFn: func(context.Context, *models.Newsletter) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Newsletter, error) {
			return &models.Newsletter{ID: id}, nil
		},
		updateFn:                  func(context.Context, *models.Newsletter) error { return nil },
		deleteFn:                  func(context.Context, uint) error { return nil },
		listByAuthorFn:            func(context.Context, uint) ([]models.Newsletter, error) { return nil, nil },
		listIndependentByAuthorFn: func(context.Context, uint) ([]models.Newsletter, error) { return nil, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
