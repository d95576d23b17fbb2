package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryName is the category assigned when service creation omits one.
// Creation upserts it by name so publishing never fails for a missing category.
const DefaultCategoryName = "Trading"

// Category groups services for browsing. Categories are hard-deleted: a
// soft-delete marker would keep the unique name claimed by an invisible row,
// blocking both the default-category upsert and recreation under the same name.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Services []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
