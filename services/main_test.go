package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global database handle at a fresh in-memory SQLite
// database migrated with the full schema. Limiting the pool to one connection
// keeps the shared-cache database alive and serializes concurrent writers the
// way a real server's row locks would.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })
}

func createTestUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

func createTestService(t *testing.T, creatorID string, status models.ServiceStatus, price float64) models.Service {
	t.Helper()

	category := models.Category{Name: "cat-" + uuid.NewString()}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	service := models.Service{
		Title:       "Test Service",
		Description: "Test description",
		Type:        models.ServiceTypeCourse,
		Price:       price,
		Currency:    "USD",
		Status:      status,
		CategoryID:  category.ID,
		CreatorID:   creatorID,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return service
}

func asActor(user models.User) Actor {
	return Actor{ID: user.ID, Role: user.Role, Authenticated: true}
}
