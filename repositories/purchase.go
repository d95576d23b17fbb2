package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
)

// PurchaseRepository handles database operations for purchases
type PurchaseRepository struct{}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

// FindByID retrieves a purchase by its ID
func (r *PurchaseRepository) FindByID(id string) (models.Purchase, error) {
	var purchase models.Purchase
	result := database.DB.
		Preload("Service").
		Preload("Service.Category").
		Preload("Service.Creator").
		First(&purchase, "id = ?", id)
	return purchase, result.Error
}

// FindByCheckoutSessionID retrieves a purchase by its checkout session
func (r *PurchaseRepository) FindByCheckoutSessionID(sessionID string) (models.Purchase, error) {
	var purchase models.Purchase
	result := database.DB.First(&purchase, "checkout_session_id = ?", sessionID)
	return purchase, result.Error
}

// FindWithFilter retrieves purchases matching the filter, newest first.
// Non-admin callers only ever see their own purchases.
func (r *PurchaseRepository) FindWithFilter(filter dto.PurchaseFilter) ([]models.Purchase, error) {
	db := database.DB.Model(&models.Purchase{})

	if !filter.IsAdmin {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var purchases []models.Purchase
	result := db.
		Preload("Service").
		Preload("Service.Category").
		Preload("Service.Creator").
		Order("created_at desc").
		Find(&purchases)
	return purchases, result.Error
}

// HasCompleted reports whether a COMPLETED purchase exists for (user, service)
func (r *PurchaseRepository) HasCompleted(userID, serviceID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Purchase{}).
		Where("user_id = ? AND service_id = ? AND status = ?",
			userID, serviceID, models.PurchaseStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

// HasCompletedForService reports whether any COMPLETED purchase references a service
func (r *PurchaseRepository) HasCompletedForService(serviceID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Purchase{}).
		Where("service_id = ? AND status = ?", serviceID, models.PurchaseStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new purchase. The partial unique index makes a duplicate-key
// error the authoritative signal that the buyer already owns the service.
func (r *PurchaseRepository) Create(purchase models.Purchase) (models.Purchase, error) {
	result := database.DB.Create(&purchase)
	return purchase, result.Error
}

// UpdateStatus transitions a purchase to a new status
func (r *PurchaseRepository) UpdateStatus(id string, status models.PurchaseStatus) error {
	return database.DB.Model(&models.Purchase{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Count counts all purchases
func (r *PurchaseRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Purchase{}).Count(&count)
	return count, result.Error
}

// CountForService counts all purchases referencing a service, any status
func (r *PurchaseRepository) CountForService(serviceID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Purchase{}).
		Where("service_id = ?", serviceID).
		Count(&count)
	return count, result.Error
}

// CompletedStatsForService returns the count and gross revenue of one
// service's COMPLETED purchases
func (r *PurchaseRepository) CompletedStatsForService(serviceID string) (int64, float64, error) {
	var count int64
	err := database.DB.Model(&models.Purchase{}).
		Where("service_id = ? AND status = ?", serviceID, models.PurchaseStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var revenue *float64
	err = database.DB.Model(&models.Purchase{}).
		Where("service_id = ? AND status = ?", serviceID, models.PurchaseStatusCompleted).
		Select("sum(amount)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}

	if revenue == nil {
		return count, 0, nil
	}
	return count, *revenue, nil
}

// CompletedStats returns the count and gross revenue of COMPLETED purchases
func (r *PurchaseRepository) CompletedStats() (int64, float64, error) {
	var count int64
	err := database.DB.Model(&models.Purchase{}).
		Where("status = ?", models.PurchaseStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var revenue *float64
	err = database.DB.Model(&models.Purchase{}).
		Where("status = ?", models.PurchaseStatusCompleted).
		Select("sum(amount)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}

	if revenue == nil {
		return count, 0, nil
	}
	return count, *revenue, nil
}

// DB returns the database instance
func (r *PurchaseRepository) DB() *gorm.DB {
	return database.DB
}
