package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository handles database operations for tags
type TagRepository struct{}

// NewTagRepository creates a new tag repository instance
func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

// GetOrCreateByNames resolves each tag name to a row, creating missing ones.
// Duplicate names in the input collapse to a single tag.
func (r *TagRepository) GetOrCreateByNames(tx *gorm.DB, names []string) ([]models.Tag, error) {
	if tx == nil {
		tx = database.DB
	}

	seen := make(map[string]bool, len(names))
	tags := make([]models.Tag, 0, len(names))

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag := models.Tag{Name: name}
		err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).
			Create(&tag).Error
		if err != nil {
			return nil, err
		}

		// Re-read into a fresh struct so a pre-existing tag comes back with
		// its real id (First would otherwise match on the id the create hook
		// assigned)
		var row models.Tag
		if err := tx.First(&row, "name = ?", name).Error; err != nil {
			return nil, err
		}
		tags = append(tags, row)
	}

	return tags, nil
}

// FindAll retrieves all tags
func (r *TagRepository) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	result := database.DB.Order("name asc").Find(&tags)
	return tags, result.Error
}

// DB returns the database instance
func (r *TagRepository) DB() *gorm.DB {
	return database.DB
}
