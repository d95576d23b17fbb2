package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct{}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// FindByID retrieves a review by its ID
func (r *ReviewRepository) FindByID(id string) (models.Review, error) {
	var review models.Review
	result := database.DB.Preload("User").First(&review, "id = ?", id)
	return review, result.Error
}

// FindWithFilter retrieves reviews matching the filter, newest first
func (r *ReviewRepository) FindWithFilter(filter dto.ReviewFilter) ([]models.Review, error) {
	db := database.DB.Model(&models.Review{})

	if filter.ServiceID != "" {
		db = db.Where("service_id = ?", filter.ServiceID)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Rating != 0 {
		db = db.Where("rating = ?", filter.Rating)
	}

	var reviews []models.Review
	result := db.Preload("User").Order("created_at desc").Find(&reviews)
	return reviews, result.Error
}

// Exists reports whether a user already reviewed a service
func (r *ReviewRepository) Exists(userID, serviceID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Review{}).
		Where("user_id = ? AND service_id = ?", userID, serviceID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new review. A duplicate-key error means the (user, service)
// pair already holds a review.
func (r *ReviewRepository) Create(review models.Review) (models.Review, error) {
	result := database.DB.Create(&review)
	return review, result.Error
}

// Update modifies an existing review
func (r *ReviewRepository) Update(review models.Review) error {
	result := database.DB.Save(&review)
	return result.Error
}

// Delete removes a review permanently
func (r *ReviewRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Review{}, "id = ?", id)
	return result.Error
}

// Count counts all reviews
func (r *ReviewRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Review{}).Count(&count)
	return count, result.Error
}

// CountForService counts reviews for one service
func (r *ReviewRepository) CountForService(serviceID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Review{}).
		Where("service_id = ?", serviceID).
		Count(&count)
	return count, result.Error
}

// AverageRatingForService computes the mean rating for one service.
// Returns nil when the service has no reviews.
func (r *ReviewRepository) AverageRatingForService(serviceID string) (*float64, error) {
	var avg *float64
	err := database.DB.Model(&models.Review{}).
		Where("service_id = ?", serviceID).
		Select("avg(rating)").
		Scan(&avg).Error
	return avg, err
}

// GlobalAverageRating computes the mean rating across all reviews.
// Returns nil when no reviews exist.
func (r *ReviewRepository) GlobalAverageRating() (*float64, error) {
	var avg *float64
	err := database.DB.Model(&models.Review{}).
		Select("avg(rating)").
		Scan(&avg).Error
	return avg, err
}

// DB returns the database instance
func (r *ReviewRepository) DB() *gorm.DB {
	return database.DB
}
