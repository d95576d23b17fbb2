package services

import (
	"errors"
	"fmt"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepo: repositories.NewCategoryRepository(),
	}
}

// ListCategories retrieves all categories with their service counts
func (s *CategoryService) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepo.CountServices(category.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.CategoryResponse{Category: category, ServiceCount: count})
	}

	return items, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(id string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	count, err := s.categoryRepo.CountServices(id)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Category: category, ServiceCount: count}, nil
}

// CreateCategory creates a new category. Admin only.
func (s *CategoryService) CreateCategory(actor Actor, req dto.CreateCategoryRequest) (*models.Category, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	category, err := s.categoryRepo.Create(category)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
		}
		return nil, err
	}

	return &category, nil
}

// UpdateCategory modifies a category. Admin only.
func (s *CategoryService) UpdateCategory(actor Actor, id string, req dto.UpdateCategoryRequest) (*models.Category, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
		}
		return nil, err
	}

	return &category, nil
}

// DeleteCategory removes a category. Admin only; fails while any service
// still references it.
func (s *CategoryService) DeleteCategory(actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.categoryRepo.CountServices(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category is referenced by %d service(s)", ErrConflict, count)
	}

	return s.categoryRepo.Delete(id)
}
