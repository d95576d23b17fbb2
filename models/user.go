package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleBuyer   Role = "BUYER"
	RoleCreator Role = "CREATOR"
	RoleAdmin   Role = "ADMIN"
)

// User represents a user in the system
type User struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	Email      string         `json:"email" gorm:"uniqueIndex;not null"`
	Password   string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name       *string        `json:"name" gorm:"default:null"`
	Image      *string        `json:"image" gorm:"default:null"`
	Role       Role           `json:"role" gorm:"type:varchar(10);default:'BUYER'"`
	IsVerified bool           `json:"isVerified" gorm:"default:false"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID so ids work the same on postgres and sqlite
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CreatorProfile is the public projection of a user attached to services and reviews
type CreatorProfile struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	Image      *string `json:"image"`
	IsVerified bool    `json:"isVerified"`
}

// Profile returns the public projection of the user
func (u *User) Profile() CreatorProfile {
	return CreatorProfile{
		ID:         u.ID,
		Name:       u.Name,
		Image:      u.Image,
		IsVerified: u.IsVerified,
	}
}
