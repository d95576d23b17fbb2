package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct{}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

// FindByID retrieves a service by its ID
func (r *ServiceRepository) FindByID(id string) (models.Service, error) {
	var service models.Service
	result := database.DB.First(&service, "id = ?", id)
	return service, result.Error
}

// FindByIDWithRelations retrieves a service with its category, tags, creator
// and review ratings preloaded
func (r *ServiceRepository) FindByIDWithRelations(id string) (models.Service, error) {
	var service models.Service
	result := database.DB.
		Preload("Category").
		Preload("Tags").
		Preload("Creator").
		Preload("Reviews").
		First(&service, "id = ?", id)
	return service, result.Error
}

// Create inserts a new service and attaches its tag set in one transaction
func (r *ServiceRepository) Create(service models.Service, tags []models.Tag) (models.Service, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&service).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
	return service, err
}

// Update saves service fields and replaces its tag set wholesale
// (clear-then-reconnect) in one transaction
func (r *ServiceRepository) Update(service models.Service, tags []models.Tag) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&service).Error; err != nil {
			return err
		}
		return tx.Model(&service).Association("Tags").Replace(tags)
	})
}

// Delete removes a service and its tag relations
func (r *ServiceRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Service{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", id).Error
	})
}

// CountByStatus counts services grouped by status
func (r *ServiceRepository) CountByStatus() (map[string]int64, error) {
	return r.countGrouped("status")
}

// CountByType counts services grouped by type
func (r *ServiceRepository) CountByType() (map[string]int64, error) {
	return r.countGrouped("type")
}

func (r *ServiceRepository) countGrouped(column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := database.DB.Model(&models.Service{}).
		Select(column + " as key, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}

// Count counts all services
func (r *ServiceRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Service{}).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves services with pagination, filtering and sorting
func (r *ServiceRepository) FindWithPagination(filter dto.ServiceFilter) ([]models.Service, int64, error) {
	var services []models.Service
	var totalCount int64

	db := database.DB.Model(&models.Service{})

	if filter.CategoryID != "" {
		db = db.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.CreatorID != "" {
		db = db.Where("creator_id = ?", filter.CreatorID)
	}

	// Search across title and description
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		db = db.Where("(title LIKE ? OR description LIKE ?)", pattern, pattern)
	}

	// Count total records (with the same filters)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	orderString := filter.SortBy + " " + filter.SortOrder

	err := db.
		Preload("Category").
		Preload("Tags").
		Preload("Creator").
		Preload("Reviews").
		Order(orderString).
		Limit(filter.PageSize).
		Offset(offset).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, totalCount, nil
}

// DB returns the database instance
func (r *ServiceRepository) DB() *gorm.DB {
	return database.DB
}
