package dto

import (
	"github.com/tradecademy/marketplace/models"
)

// CreateServiceRequest represents the payload for publishing a new service
type CreateServiceRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Type        string                `json:"type" binding:"required"`
	Price       *float64              `json:"price" binding:"required"`
	Currency    string                `json:"currency"`
	Status      string                `json:"status"`
	Features    []string              `json:"features"`
	CategoryID  string                `json:"categoryId"`
	Tags        []string              `json:"tags"`
	Content     *models.CourseContent `json:"content"`
}

// UpdateServiceRequest represents the payload for updating an existing service.
// Tags and content are replaced wholesale on every save.
type UpdateServiceRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Type        string                `json:"type" binding:"required"`
	Price       *float64              `json:"price" binding:"required"`
	Currency    string                `json:"currency"`
	Status      string                `json:"status"`
	Features    []string              `json:"features"`
	CategoryID  string                `json:"categoryId"`
	Tags        []string              `json:"tags"`
	Content     *models.CourseContent `json:"content"`
}

// ServiceFilter represents filter criteria for listing services
type ServiceFilter struct {
	CategoryID    string
	Type          string
	Status        string
	CreatorID     string
	Query         string
	SortBy        string
	SortOrder     string
	Page          int
	PageSize      int
	Authenticated bool
	ActorID       string
	IsAdmin       bool
}

// ServiceResponse is a service joined with its computed rating aggregate
type ServiceResponse struct {
	models.Service
	Creator       models.CreatorProfile `json:"creator"`
	AverageRating *float64              `json:"averageRating"`
	ReviewCount   int                   `json:"reviewCount"`
}

// ServiceListResponse represents a paginated service list
type ServiceListResponse struct {
	Services   []ServiceResponse `json:"services"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
