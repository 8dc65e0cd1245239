package repository

import (
	"testing"

	"newsroom/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.RoleGroup{},
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPublisher(t *testing.T, db *gorm.DB, name string) *models.Publisher {
	t.Helper()
	publisher := &models.Publisher{Name: name}
	if err := db.Create(publisher).Error; err != nil {
		t.Fatalf("create publisher %s: %v", name, err)
	}
	return publisher
}
