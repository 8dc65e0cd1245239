package service

import (
	"context"
	"log/slog"

	"newsroom/internal/cache"
	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
	"newsroom/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AccountService owns registration, authentication, and the role state
// machine. Role changes enforce exclusivity: becoming a journalist clears
// reader subscriptions in the same transaction as the role write.
type AccountService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// NewAccountService creates a new account service.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register creates a user with a chosen role and assigns the matching role group.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if !models.ValidRole(in.Role) {
		return nil, models.NewValidationError("Role must be one of reader, editor, journalist")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashedPassword),
		Role:     in.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.assignRoleGroup(ctx, user.ID, in.Role)

	return user, nil
}

// Authenticate verifies credentials and returns the user.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// Profile returns the user for display, served through the Redis cache when
// one is configured. The password hash carries a json:"-" tag, so the cached
// copy never contains it.
func (s *AccountService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := cache.CacheAside(ctx, cache.UserKey(userID), &user, cache.UserTTL, func() error {
		fetched, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		user = *fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetRole moves the user to newRole and enforces role exclusivity.
//
// The role write and the clearing of forbidden associations happen in one
// store transaction (repository.UserRepository.SetRole); no observer can see
// the role changed without the clearing applied. Role-group bookkeeping runs
// after the transaction commits and its failures are logged and suppressed:
// the exclusivity invariant never depends on the auxiliary group table.
func (s *AccountService) SetRole(ctx context.Context, userID uint, newRole models.Role) (*models.User, error) {
	if !models.ValidRole(newRole) {
		return nil, models.NewValidationError("Role must be one of reader, editor, journalist")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Every role is reachable from every other; a same-role call is a no-op,
	// not an error.
	if user.Role != newRole {
		if err := s.userRepo.SetRole(ctx, userID, newRole); err != nil {
			return nil, err
		}
		cache.InvalidateUser(ctx, userID)
		observability.RoleChangesTotal.WithLabelValues(string(newRole)).Inc()
	}

	s.assignRoleGroup(ctx, userID, newRole)

	return s.userRepo.GetByID(ctx, userID)
}

// assignRoleGroup replaces the user's role-group membership so it contains
// exactly the group named after the role. Failures are non-fatal.
func (s *AccountService) assignRoleGroup(ctx context.Context, userID uint, role models.Role) {
	if err := s.userRepo.ReplaceRoleGroup(ctx, userID, role.GroupName()); err != nil {
		observability.RoleGroupFailuresTotal.Inc()
		middleware.Logger.Warn("role group assignment failed",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("role", string(role)),
			slog.String("error", err.Error()),
		)
	}
}
