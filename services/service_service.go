package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// ServiceService handles business logic for service authoring
type ServiceService struct {
	serviceRepo  *repositories.ServiceRepository
	categoryRepo *repositories.CategoryRepository
	tagRepo      *repositories.TagRepository
	purchaseRepo *repositories.PurchaseRepository
}

// NewServiceService creates a new service service instance
func NewServiceService() *ServiceService {
	return &ServiceService{
		serviceRepo:  repositories.NewServiceRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
		tagRepo:      repositories.NewTagRepository(),
		purchaseRepo: repositories.NewPurchaseRepository(),
	}
}

// sanitizeContent normalizes the chapters/lessons tree before persistence:
// stable ids are assigned where missing, positions are rewritten to the list
// order, and attachments without an uploaded URL are stripped.
func sanitizeContent(content *models.CourseContent) models.CourseContent {
	if content == nil {
		return models.CourseContent{Chapters: []models.Chapter{}}
	}

	clean := models.CourseContent{Chapters: make([]models.Chapter, 0, len(content.Chapters))}
	for ci, chapter := range content.Chapters {
		if chapter.ID == "" {
			chapter.ID = uuid.NewString()
		}
		chapter.Position = ci

		lessons := make([]models.Lesson, 0, len(chapter.Lessons))
		for li, lesson := range chapter.Lessons {
			if lesson.ID == "" {
				lesson.ID = uuid.NewString()
			}
			lesson.Position = li

			attachments := make([]models.Attachment, 0, len(lesson.Attachments))
			for _, att := range lesson.Attachments {
				if att.URL == "" {
					continue
				}
				attachments = append(attachments, att)
			}
			lesson.Attachments = attachments
			lessons = append(lessons, lesson)
		}
		chapter.Lessons = lessons
		clean.Chapters = append(clean.Chapters, chapter)
	}

	return clean
}

// resolveCategory returns the category for a new or updated service. When no
// id is given the well-known default category is upserted by name so that
// publishing never fails for a missing category.
func (s *ServiceService) resolveCategory(categoryID string) (models.Category, error) {
	if categoryID == "" {
		return s.categoryRepo.GetOrCreateByName(
			models.DefaultCategoryName,
			"Default category for trading courses and services",
		)
	}

	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, fmt.Errorf("%w: category not found", ErrInvalidInput)
		}
		return models.Category{}, err
	}
	return category, nil
}

// CreateService publishes a new service owned by the actor
func (s *ServiceService) CreateService(actor Actor, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.CanCreateService() {
		return nil, ErrForbidden
	}

	serviceType := models.ServiceType(req.Type)
	if !models.ValidServiceType(serviceType) {
		return nil, fmt.Errorf("%w: invalid service type %q", ErrInvalidInput, req.Type)
	}

	if req.Price == nil || *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}

	status := models.ServiceStatusActive
	if req.Status != "" {
		status = models.ServiceStatus(req.Status)
		if !models.ValidServiceStatus(status) {
			return nil, fmt.Errorf("%w: invalid service status %q", ErrInvalidInput, req.Status)
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	category, err := s.resolveCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}

	// Duplicate tag names collapse to a single relation
	tags, err := s.tagRepo.GetOrCreateByNames(nil, req.Tags)
	if err != nil {
		return nil, err
	}

	features := models.Features(req.Features)
	if features == nil {
		features = models.Features{}
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Type:        serviceType,
		Price:       *req.Price,
		Currency:    currency,
		Status:      status,
		Features:    features,
		Content:     sanitizeContent(req.Content),
		CategoryID:  category.ID,
		CreatorID:   actor.ID,
	}

	service, err = s.serviceRepo.Create(service, tags)
	if err != nil {
		return nil, err
	}

	return s.GetService(actor, service.ID)
}

// GetService retrieves a service with its rating aggregate. Anyone may read an
// ACTIVE service; drafts and archived services are visible to owner and admin only.
func (s *ServiceService) GetService(actor Actor, id string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := CanAccess(actor, service.CreatorID, ActionRead, service.Status); err != nil {
		return nil, err
	}

	resp := buildServiceResponse(service)
	return &resp, nil
}

// UpdateService re-validates and saves a service, replacing its tag set and
// content tree wholesale. Last write wins; there is no concurrency token.
func (s *ServiceService) UpdateService(actor Actor, id string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := CanAccess(actor, service.CreatorID, ActionUpdate, service.Status); err != nil {
		return nil, err
	}

	serviceType := models.ServiceType(req.Type)
	if !models.ValidServiceType(serviceType) {
		return nil, fmt.Errorf("%w: invalid service type %q", ErrInvalidInput, req.Type)
	}

	if req.Price == nil || *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}

	if req.Status != "" {
		status := models.ServiceStatus(req.Status)
		if !models.ValidServiceStatus(status) {
			return nil, fmt.Errorf("%w: invalid service status %q", ErrInvalidInput, req.Status)
		}
		service.Status = status
	}

	category, err := s.resolveCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetOrCreateByNames(nil, req.Tags)
	if err != nil {
		return nil, err
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Type = serviceType
	service.Price = *req.Price
	if req.Currency != "" {
		service.Currency = req.Currency
	}
	if req.Features != nil {
		service.Features = models.Features(req.Features)
	}
	service.Content = sanitizeContent(req.Content)
	service.CategoryID = category.ID

	if err := s.serviceRepo.Update(service, tags); err != nil {
		return nil, err
	}

	return s.GetService(actor, id)
}

// DeleteService removes a service. Services with completed purchases are kept
// so buyers are never silently orphaned.
func (s *ServiceService) DeleteService(actor Actor, id string) error {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := CanAccess(actor, service.CreatorID, ActionDelete, service.Status); err != nil {
		return err
	}

	sold, err := s.purchaseRepo.HasCompletedForService(id)
	if err != nil {
		return err
	}
	if sold {
		return fmt.Errorf("%w: service has completed purchases", ErrConflict)
	}

	return s.serviceRepo.Delete(id)
}

// ListServices retrieves services with pagination, filtering and sorting.
// Unauthenticated callers only ever see ACTIVE services.
func (s *ServiceService) ListServices(filter dto.ServiceFilter) (dto.ServiceListResponse, error) {
	var response dto.ServiceListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"price":      true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	// Anonymous callers only see ACTIVE services. Authenticated non-admins
	// may browse their own drafts and archives but nobody else's.
	if !filter.Authenticated {
		filter.Status = string(models.ServiceStatusActive)
	} else if filter.Status == "" {
		filter.Status = string(models.ServiceStatusActive)
	} else if filter.Status != string(models.ServiceStatusActive) && !filter.IsAdmin {
		filter.CreatorID = filter.ActorID
	}

	serviceRows, totalCount, err := s.serviceRepo.FindWithPagination(filter)
	if err != nil {
		return response, err
	}

	items := make([]dto.ServiceResponse, 0, len(serviceRows))
	for _, svc := range serviceRows {
		items = append(items, buildServiceResponse(svc))
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ServiceListResponse{
		Services:   items,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// buildServiceResponse derives the rating aggregate from the loaded reviews.
// The average is always computed on read, never stored.
func buildServiceResponse(service models.Service) dto.ServiceResponse {
	resp := dto.ServiceResponse{
		Service:     service,
		Creator:     service.Creator.Profile(),
		ReviewCount: len(service.Reviews),
	}

	if len(service.Reviews) > 0 {
		var sum int
		for _, review := range service.Reviews {
			sum += review.Rating
		}
		avg := float64(sum) / float64(len(service.Reviews))
		resp.AverageRating = &avg
	}

	// Reviews are exposed through their own endpoint, not inlined here
	resp.Reviews = nil

	return resp
}
