package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Features custom type for JSON storage
type Features []string

func (f Features) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *Features) Scan(value interface{}) error {
	if value == nil {
		*f = Features{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, f)
}

// Attachment references a file already uploaded out-of-band.
// Entries without a URL are stripped before persistence.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Lesson is a single unit of course material
type Lesson struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Position    int          `json:"position"`
	VideoURL    string       `json:"videoUrl,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

// Chapter is an ordered group of lessons
type Chapter struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Position int      `json:"position"`
	Lessons  []Lesson `json:"lessons"`
}

// CourseContent is the chapters -> lessons -> attachments tree, stored as JSON.
// It is replaced in full on every save; chapters and lessons carry stable ids
// and explicit positions.
type CourseContent struct {
	Chapters []Chapter `json:"chapters"`
}

func (c CourseContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CourseContent) Scan(value interface{}) error {
	if value == nil {
		*c = CourseContent{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, c)
}

// ServiceType represents the kinds of offerings a creator can publish
type ServiceType string

const (
	ServiceTypeCourse     ServiceType = "COURSE"
	ServiceTypeCommunity  ServiceType = "COMMUNITY"
	ServiceTypeSignals    ServiceType = "SIGNALS"
	ServiceTypeMentorship ServiceType = "MENTORSHIP"
	ServiceTypeAnalysis   ServiceType = "ANALYSIS"
	ServiceTypeTool       ServiceType = "TOOL"
	ServiceTypeOther      ServiceType = "OTHER"
)

// ValidServiceType reports whether t is one of the enumerated service types
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeCourse, ServiceTypeCommunity, ServiceTypeSignals,
		ServiceTypeMentorship, ServiceTypeAnalysis, ServiceTypeTool, ServiceTypeOther:
		return true
	}
	return false
}

// ServiceStatus represents the publication state of a service
type ServiceStatus string

const (
	ServiceStatusDraft    ServiceStatus = "DRAFT"
	ServiceStatusActive   ServiceStatus = "ACTIVE"
	ServiceStatusArchived ServiceStatus = "ARCHIVED"
)

// ValidServiceStatus reports whether s is one of the enumerated statuses
func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServiceStatusDraft, ServiceStatusActive, ServiceStatusArchived:
		return true
	}
	return false
}

// Service represents a sellable offering published by a creator
type Service struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"not null"`
	Type        ServiceType   `json:"type" gorm:"type:varchar(20);not null"`
	Price       float64       `json:"price" gorm:"not null"`
	Currency    string        `json:"currency" gorm:"type:varchar(3);default:'USD'"`
	Status      ServiceStatus `json:"status" gorm:"type:varchar(10);default:'ACTIVE';index"`
	Features    Features      `json:"features" gorm:"type:jsonb;default:'[]'"`
	Content     CourseContent `json:"content" gorm:"type:jsonb;default:'{}'"`

	CategoryID string `json:"categoryId" gorm:"type:uuid;not null;index"`
	CreatorID  string `json:"creatorId" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Creator  User     `json:"-" gorm:"foreignKey:CreatorID"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:service_tags"`
	Reviews  []Review `json:"reviews,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
