package services

import (
	"errors"
	"fmt"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviewRepo  *repositories.ReviewRepository
	serviceRepo *repositories.ServiceRepository
}

// NewReviewService creates a new review service instance
func NewReviewService() *ReviewService {
	return &ReviewService{
		reviewRepo:  repositories.NewReviewRepository(),
		serviceRepo: repositories.NewServiceRepository(),
	}
}

// ListReviews retrieves reviews matching the filter
func (s *ReviewService) ListReviews(filter dto.ReviewFilter) ([]models.Review, error) {
	return s.reviewRepo.FindWithFilter(filter)
}

// CreateReview submits a review for a service. One review per (user, service);
// the unique constraint is the authoritative duplicate signal.
func (s *ReviewService) CreateReview(actor Actor, req dto.CreateReviewRequest) (*models.Review, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	if _, err := s.serviceRepo.FindByID(req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Friendly pre-check; the insert below still races safely
	exists, err := s.reviewRepo.Exists(actor.ID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := models.Review{
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		UserID:    actor.ID,
		ServiceID: req.ServiceID,
	}

	review, err = s.reviewRepo.Create(review)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	return &review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(id string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// UpdateReview edits a review. Author or admin only.
func (s *ReviewService) UpdateReview(actor Actor, id string, req dto.UpdateReviewRequest) (*models.Review, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if review.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
		}
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	return &review, nil
}

// DeleteReview removes a review. Author or admin only.
func (s *ReviewService) DeleteReview(actor Actor, id string) error {
	if !actor.Authenticated {
		return ErrUnauthenticated
	}

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if review.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.reviewRepo.Delete(id)
}
