package dto

import "github.com/tradecademy/marketplace/models"

// CreateCategoryRequest represents the payload for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents the payload for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse is a category joined with the number of services using it
type CategoryResponse struct {
	models.Category
	ServiceCount int64 `json:"serviceCount"`
}
