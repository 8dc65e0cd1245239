// Package repository implements data access on top of GORM.
package repository

import (
	"context"
	"errors"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	// SetRole updates the user's role and, inside the same transaction,
	// clears the subscription associations the new role forbids. A reader
	// or an interrupted write can never observe the role changed without
	// the clearing applied.
	SetRole(ctx context.Context, userID uint, role models.Role) error
	// ReplaceRoleGroup makes the named group the user's only role group,
	// creating it on first use. Errors are returned raw; the caller decides
	// whether they are fatal.
	ReplaceRoleGroup(ctx context.Context, userID uint, groupName string) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil for not found, not an error
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, userID uint, role models.Role) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// A journalist must not hold reader subscriptions. Clearing happens
		// in the same transaction as the role write; independent-content
		// membership is derived from publisher absence and needs no clearing.
		if role == models.RoleJournalist {
			user := models.User{ID: userID}
			if err := tx.Model(&user).Association("SubscribedPublishers").Clear(); err != nil {
				return err
			}
			if err := tx.Model(&user).Association("SubscribedJournalists").Clear(); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("User", userID)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) ReplaceRoleGroup(ctx context.Context, userID uint, groupName string) error {
	var group models.RoleGroup
	if err := r.db.WithContext(ctx).Where(models.RoleGroup{Name: groupName}).FirstOrCreate(&group).Error; err != nil {
		return err
	}
	user := models.User{ID: userID}
	return r.db.WithContext(ctx).Model(&user).Association("RoleGroups").Replace(&group)
}
