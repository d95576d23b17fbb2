package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
)

func TestCreateReviewRatingBounds(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewReviewService()
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
			ServiceID: service.ID,
			Rating:    rating,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("rating %d: expected ErrInvalidInput, got %v", rating, err)
		}
	}

	// No rows created
	reviews, err := svc.ListReviews(dto.ReviewFilter{ServiceID: service.ID})
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("expected no reviews persisted, got %d", len(reviews))
	}
}

func TestCreateReviewServiceNotFound(t *testing.T) {
	setupTestDB(t)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)

	svc := NewReviewService()
	_, err := svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
		ServiceID: "missing",
		Rating:    4,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewReviewService()
	if _, err := svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
		ServiceID: service.ID,
		Rating:    4,
	}); err != nil {
		t.Fatalf("first CreateReview failed: %v", err)
	}

	_, err := svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
		ServiceID: service.ID,
		Rating:    5,
	})
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestConcurrentDuplicateReviews(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewReviewService()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
				ServiceID: service.ID,
				Rating:    5,
			})
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyReviewed):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || duplicates != 1 {
		t.Errorf("expected exactly one success and one duplicate, got %d/%d", succeeded, duplicates)
	}
}

func TestAverageRatingComputedOnRead(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	serviceSvc := NewServiceService()

	// No reviews yet: aggregate undefined
	resp, err := serviceSvc.GetService(asActor(creator), service.ID)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if resp.AverageRating != nil {
		t.Errorf("expected nil average with zero reviews, got %v", *resp.AverageRating)
	}
	if resp.ReviewCount != 0 {
		t.Errorf("expected review count 0, got %d", resp.ReviewCount)
	}

	reviewSvc := NewReviewService()
	for i, rating := range []int{4, 5} {
		buyer := createTestUser(t, string(rune('a'+i))+"@example.com", models.RoleBuyer)
		if _, err := reviewSvc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
			ServiceID: service.ID,
			Rating:    rating,
		}); err != nil {
			t.Fatalf("CreateReview failed: %v", err)
		}
	}

	resp, err = serviceSvc.GetService(asActor(creator), service.ID)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if resp.AverageRating == nil || *resp.AverageRating != 4.5 {
		t.Errorf("expected average 4.5, got %v", resp.AverageRating)
	}
	if resp.ReviewCount != 2 {
		t.Errorf("expected review count 2, got %d", resp.ReviewCount)
	}
}

func TestUpdateReviewOnlyAuthorOrAdmin(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	other := createTestUser(t, "other@example.com", models.RoleBuyer)
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewReviewService()
	review, err := svc.CreateReview(asActor(buyer), dto.CreateReviewRequest{
		ServiceID: service.ID,
		Rating:    3,
	})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	newRating := 4
	if _, err := svc.UpdateReview(asActor(other), review.ID, dto.UpdateReviewRequest{Rating: &newRating}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for stranger, got %v", err)
	}

	updated, err := svc.UpdateReview(asActor(buyer), review.ID, dto.UpdateReviewRequest{Rating: &newRating})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Rating != 4 {
		t.Errorf("expected rating 4, got %d", updated.Rating)
	}

	if err := svc.DeleteReview(asActor(other), review.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden on stranger delete, got %v", err)
	}
	if err := svc.DeleteReview(asActor(admin), review.ID); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
}
