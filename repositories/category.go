package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindAll retrieves all categories
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	result := database.DB.Order("name asc").Find(&categories)
	return categories, result.Error
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id string) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "id = ?", id)
	return category, result.Error
}

// FindByName retrieves a category by its unique name
func (r *CategoryRepository) FindByName(name string) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "name = ?", name)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := database.DB.Create(&category)
	return category, result.Error
}

// GetOrCreateByName upserts a category keyed on its unique name. Safe to call
// concurrently: the insert is a no-op when the name already exists.
func (r *CategoryRepository) GetOrCreateByName(name, description string) (models.Category, error) {
	category := models.Category{Name: name, Description: description}
	err := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	// Re-read so a pre-existing row comes back with its real id
	return r.FindByName(name)
}

// Update modifies an existing category
func (r *CategoryRepository) Update(category models.Category) error {
	result := database.DB.Save(&category)
	return result.Error
}

// Delete removes a category from the database
func (r *CategoryRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Category{}, "id = ?", id)
	return result.Error
}

// CountServices counts services referencing a category
func (r *CategoryRepository) CountServices(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Service{}).Where("category_id = ?", id).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *CategoryRepository) DB() *gorm.DB {
	return database.DB
}
