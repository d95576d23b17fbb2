package services

import (
	"errors"
	"testing"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateServiceDefaultCategory(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	resp, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(50),
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	if resp.Category.Name != models.DefaultCategoryName {
		t.Errorf("expected default category %q, got %q", models.DefaultCategoryName, resp.Category.Name)
	}
	if resp.Status != models.ServiceStatusActive {
		t.Errorf("expected status ACTIVE, got %s", resp.Status)
	}
	if resp.Price != 50 {
		t.Errorf("expected price 50, got %v", resp.Price)
	}

	// A second uncategorized service reuses the same category row
	resp2, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X2",
		Description: "Y2",
		Type:        "COURSE",
		Price:       floatPtr(20),
	})
	if err != nil {
		t.Fatalf("second CreateService failed: %v", err)
	}
	if resp2.CategoryID != resp.CategoryID {
		t.Errorf("expected category to be reused, got %s and %s", resp.CategoryID, resp2.CategoryID)
	}
}

func TestCreateServiceAfterDefaultCategoryDeleted(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)

	svc := NewServiceService()
	resp, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(50),
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	if err := svc.DeleteService(asActor(creator), resp.ID); err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	categories := NewCategoryService()
	if err := categories.DeleteCategory(asActor(admin), resp.CategoryID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	// Publishing without a category must re-upsert the default, even after an
	// admin removed it
	resp2, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X2",
		Description: "Y2",
		Type:        "COURSE",
		Price:       floatPtr(20),
	})
	if err != nil {
		t.Fatalf("create after category delete failed: %v", err)
	}
	if resp2.Category.Name != models.DefaultCategoryName {
		t.Errorf("expected default category %q, got %q", models.DefaultCategoryName, resp2.Category.Name)
	}
}

func TestCreateServiceInvalidType(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	_, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "WEBINAR",
		Price:       floatPtr(10),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateServiceNegativePrice(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	_, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(-1),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateServiceRequiresCreatorRole(t *testing.T) {
	setupTestDB(t)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)

	svc := NewServiceService()
	_, err := svc.CreateService(asActor(buyer), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateServiceTagDeduplication(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	resp, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
		Tags:        []string{"a", "b", "a"},
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	if len(resp.Tags) != 2 {
		t.Fatalf("expected 2 distinct tags, got %d", len(resp.Tags))
	}
	names := map[string]bool{}
	for _, tag := range resp.Tags {
		names[tag.Name] = true
	}
	if !names["a"] || !names["b"] {
		t.Errorf("expected tags {a, b}, got %v", names)
	}
}

func TestUpdateServiceReplacesTagsWholesale(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	created, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
		Tags:        []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	updated, err := svc.UpdateService(asActor(creator), created.ID, dto.UpdateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
		CategoryID:  created.CategoryID,
		Tags:        []string{"c"},
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}

	if len(updated.Tags) != 1 || updated.Tags[0].Name != "c" {
		t.Errorf("expected tag set replaced with {c}, got %v", updated.Tags)
	}
}

func TestUpdateServiceForbiddenForNonOwner(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	other := createTestUser(t, "other@example.com", models.RoleCreator)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewServiceService()
	_, err := svc.UpdateService(asActor(other), service.ID, dto.UpdateServiceRequest{
		Title:       "Hijacked",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// No fields changed
	reloaded, err := svc.GetService(asActor(creator), service.ID)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if reloaded.Title != "Test Service" {
		t.Errorf("expected title untouched, got %q", reloaded.Title)
	}
}

func TestUpdateServiceAllowedForAdmin(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 10)

	svc := NewServiceService()
	updated, err := svc.UpdateService(asActor(admin), service.ID, dto.UpdateServiceRequest{
		Title:       "Moderated",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
		CategoryID:  service.CategoryID,
	})
	if err != nil {
		t.Fatalf("UpdateService as admin failed: %v", err)
	}
	if updated.Title != "Moderated" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
}

func TestContentSanitization(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)

	svc := NewServiceService()
	resp, err := svc.CreateService(asActor(creator), dto.CreateServiceRequest{
		Title:       "X",
		Description: "Y",
		Type:        "COURSE",
		Price:       floatPtr(10),
		Content: &models.CourseContent{
			Chapters: []models.Chapter{
				{
					Title:    "Intro",
					Position: 99,
					Lessons: []models.Lesson{
						{
							Title:    "Welcome",
							Position: 42,
							Attachments: []models.Attachment{
								{Name: "slides.pdf", URL: "https://cdn.example.com/slides.pdf"},
								{Name: "pending-upload"},
							},
						},
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	if len(resp.Content.Chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(resp.Content.Chapters))
	}
	chapter := resp.Content.Chapters[0]
	if chapter.ID == "" {
		t.Error("expected chapter to receive a stable id")
	}
	if chapter.Position != 0 {
		t.Errorf("expected chapter position normalized to 0, got %d", chapter.Position)
	}

	lesson := chapter.Lessons[0]
	if lesson.ID == "" {
		t.Error("expected lesson to receive a stable id")
	}
	if lesson.Position != 0 {
		t.Errorf("expected lesson position normalized to 0, got %d", lesson.Position)
	}
	if len(lesson.Attachments) != 1 || lesson.Attachments[0].URL == "" {
		t.Errorf("expected attachment without URL stripped, got %v", lesson.Attachments)
	}
}

func TestDeleteServiceWithCompletedPurchasesConflict(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	buyer := createTestUser(t, "buyer@example.com", models.RoleBuyer)
	service := createTestService(t, creator.ID, models.ServiceStatusActive, 20)

	purchases := NewPurchaseService()
	if _, err := purchases.CreatePurchase(asActor(buyer), dto.CreatePurchaseRequest{
		ServiceID:       service.ID,
		PaymentMethodID: "pm_test",
	}); err != nil {
		t.Fatalf("CreatePurchase failed: %v", err)
	}

	svc := NewServiceService()
	err := svc.DeleteService(asActor(creator), service.ID)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for sold service, got %v", err)
	}
}

func TestListServicesAnonymousSeesOnlyActive(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	createTestService(t, creator.ID, models.ServiceStatusActive, 10)
	createTestService(t, creator.ID, models.ServiceStatusDraft, 10)

	svc := NewServiceService()
	resp, err := svc.ListServices(dto.ServiceFilter{Status: "DRAFT"})
	if err != nil {
		t.Fatalf("ListServices failed: %v", err)
	}

	if resp.TotalCount != 1 {
		t.Fatalf("expected anonymous caller to see 1 active service, got %d", resp.TotalCount)
	}
	if resp.Services[0].Status != models.ServiceStatusActive {
		t.Errorf("expected ACTIVE service, got %s", resp.Services[0].Status)
	}
}

func TestListServicesDraftFilterScopedToOwner(t *testing.T) {
	setupTestDB(t)
	creator := createTestUser(t, "creator@example.com", models.RoleCreator)
	other := createTestUser(t, "other@example.com", models.RoleCreator)
	createTestService(t, creator.ID, models.ServiceStatusDraft, 10)
	createTestService(t, other.ID, models.ServiceStatusDraft, 10)

	svc := NewServiceService()
	resp, err := svc.ListServices(dto.ServiceFilter{
		Status:        "DRAFT",
		Authenticated: true,
		ActorID:       creator.ID,
	})
	if err != nil {
		t.Fatalf("ListServices failed: %v", err)
	}

	if resp.TotalCount != 1 {
		t.Fatalf("expected only own drafts, got %d services", resp.TotalCount)
	}
	if resp.Services[0].CreatorID != creator.ID {
		t.Errorf("expected own draft, got creator %s", resp.Services[0].CreatorID)
	}
}
