package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a buyer's rating of a service. The composite unique index is the
// authoritative guard against duplicate reviews per (user, service).
type Review struct {
	ID      string `json:"id" gorm:"primaryKey;type:uuid"`
	Rating  int    `json:"rating" gorm:"not null"`
	Title   string `json:"title" gorm:"default:null"`
	Comment string `json:"comment" gorm:"default:null"`

	UserID    string `json:"userId" gorm:"type:uuid;not null;uniqueIndex:uniq_review_user_service"`
	ServiceID string `json:"serviceId" gorm:"type:uuid;not null;uniqueIndex:uniq_review_user_service"`

	// Reviews are hard-deleted: a soft-delete marker would keep the unique
	// index claimed and block the author from ever reviewing again.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Service Service `json:"-" gorm:"foreignKey:ServiceID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
