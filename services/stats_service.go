package services

import (
	"errors"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// StatsService computes the admin marketplace overview
type StatsService struct {
	userRepo     *repositories.UserRepository
	serviceRepo  *repositories.ServiceRepository
	purchaseRepo *repositories.PurchaseRepository
	reviewRepo   *repositories.ReviewRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{
		userRepo:     repositories.NewUserRepository(),
		serviceRepo:  repositories.NewServiceRepository(),
		purchaseRepo: repositories.NewPurchaseRepository(),
		reviewRepo:   repositories.NewReviewRepository(),
	}
}

// GetOverview aggregates marketplace-wide counters for the admin dashboard
func (s *StatsService) GetOverview() (dto.MarketplaceStatsResponse, error) {
	var stats dto.MarketplaceStatsResponse

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return stats, err
	}
	creators, err := s.userRepo.CountByRole(models.RoleCreator)
	if err != nil {
		return stats, err
	}
	stats.Users.Total = totalUsers
	stats.Users.Creators = creators

	totalServices, err := s.serviceRepo.Count()
	if err != nil {
		return stats, err
	}
	byType, err := s.serviceRepo.CountByType()
	if err != nil {
		return stats, err
	}
	byStatus, err := s.serviceRepo.CountByStatus()
	if err != nil {
		return stats, err
	}
	stats.Services.Total = totalServices
	stats.Services.ByType = byType
	stats.Services.ByStatus = byStatus

	totalPurchases, err := s.purchaseRepo.Count()
	if err != nil {
		return stats, err
	}
	completed, revenue, err := s.purchaseRepo.CompletedStats()
	if err != nil {
		return stats, err
	}
	stats.Purchases.Total = totalPurchases
	stats.Purchases.Completed = completed
	stats.Purchases.GrossRevenue = revenue

	totalReviews, err := s.reviewRepo.Count()
	if err != nil {
		return stats, err
	}
	avgRating, err := s.reviewRepo.GlobalAverageRating()
	if err != nil {
		return stats, err
	}
	stats.Reviews.Total = totalReviews
	stats.Reviews.AverageRating = avgRating

	return stats, nil
}

// GetServiceAnalytics aggregates one service's purchase and review numbers
// for its creator's dashboard. Owner or admin only.
func (s *StatsService) GetServiceAnalytics(actor Actor, serviceID string) (dto.ServiceAnalyticsResponse, error) {
	var analytics dto.ServiceAnalyticsResponse

	if !actor.Authenticated {
		return analytics, ErrUnauthenticated
	}

	service, err := s.serviceRepo.FindByID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return analytics, ErrNotFound
		}
		return analytics, err
	}

	if service.CreatorID != actor.ID && !actor.IsAdmin() {
		return analytics, ErrForbidden
	}

	analytics.ServiceID = service.ID

	totalPurchases, err := s.purchaseRepo.CountForService(serviceID)
	if err != nil {
		return analytics, err
	}
	completed, revenue, err := s.purchaseRepo.CompletedStatsForService(serviceID)
	if err != nil {
		return analytics, err
	}
	analytics.Purchases.Total = totalPurchases
	analytics.Purchases.Completed = completed
	analytics.Purchases.GrossRevenue = revenue

	totalReviews, err := s.reviewRepo.CountForService(serviceID)
	if err != nil {
		return analytics, err
	}
	avgRating, err := s.reviewRepo.AverageRatingForService(serviceID)
	if err != nil {
		return analytics, err
	}
	analytics.Reviews.Total = totalReviews
	analytics.Reviews.AverageRating = avgRating

	return analytics, nil
}
