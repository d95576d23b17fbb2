package services

import (
	"errors"
	"fmt"

	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// PurchaseService handles business logic for purchases
type PurchaseService struct {
	purchaseRepo *repositories.PurchaseRepository
	serviceRepo  *repositories.ServiceRepository
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService() *PurchaseService {
	return &PurchaseService{
		purchaseRepo: repositories.NewPurchaseRepository(),
		serviceRepo:  repositories.NewServiceRepository(),
	}
}

// checkPurchasable runs the shared purchase preconditions and returns the
// service on success
func (s *PurchaseService) checkPurchasable(actor Actor, serviceID string) (models.Service, error) {
	if !actor.Authenticated {
		return models.Service{}, ErrUnauthenticated
	}

	service, err := s.serviceRepo.FindByID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Service{}, ErrNotFound
		}
		return models.Service{}, err
	}

	if service.Status != models.ServiceStatusActive {
		return models.Service{}, ErrUnavailable
	}

	owned, err := s.purchaseRepo.HasCompleted(actor.ID, serviceID)
	if err != nil {
		return models.Service{}, err
	}
	if owned {
		return models.Service{}, ErrAlreadyOwned
	}

	if service.CreatorID == actor.ID {
		return models.Service{}, ErrSelfPurchase
	}

	return service, nil
}

// CreatePurchase runs the direct (in-app) purchase path: preconditions, then a
// COMPLETED purchase with amount and currency copied from the service. The
// partial unique index makes concurrent duplicate attempts fail on insert.
func (s *PurchaseService) CreatePurchase(actor Actor, req dto.CreatePurchaseRequest) (*models.Purchase, error) {
	service, err := s.checkPurchasable(actor, req.ServiceID)
	if err != nil {
		return nil, err
	}

	purchase := models.Purchase{
		Amount:          service.Price,
		Currency:        service.Currency,
		Status:          models.PurchaseStatusCompleted,
		PaymentMethodID: req.PaymentMethodID,
		UserID:          actor.ID,
		ServiceID:       service.ID,
	}

	purchase, err = s.purchaseRepo.Create(purchase)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyOwned
		}
		return nil, err
	}

	// Return with the joined service projection
	full, err := s.purchaseRepo.FindByID(purchase.ID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// GetPurchase retrieves a purchase. Buyer, service creator and admin only.
func (s *PurchaseService) GetPurchase(actor Actor, id string) (*models.Purchase, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}

	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if purchase.UserID != actor.ID && purchase.Service.CreatorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	return &purchase, nil
}

// ListPurchases retrieves the actor's purchases (admins see all)
func (s *PurchaseService) ListPurchases(actor Actor, status string) ([]models.Purchase, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}

	if status != "" && !models.ValidPurchaseStatus(models.PurchaseStatus(status)) {
		return nil, fmt.Errorf("%w: invalid purchase status %q", ErrInvalidInput, status)
	}

	return s.purchaseRepo.FindWithFilter(dto.PurchaseFilter{
		UserID:  actor.ID,
		Status:  status,
		IsAdmin: actor.IsAdmin(),
	})
}

// UpdatePurchase transitions a purchase's status. Only the buyer, the
// service's creator or an admin may transition, the target must be an
// enumerated status, and the transition must be reachable on the status
// graph. COMPLETED is never reachable here; only the payment webhook can
// settle a pending purchase.
func (s *PurchaseService) UpdatePurchase(actor Actor, id string, target models.PurchaseStatus) (*models.Purchase, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}

	if !models.ValidPurchaseStatus(target) {
		return nil, fmt.Errorf("%w: invalid purchase status %q", ErrInvalidInput, target)
	}

	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isBuyer := purchase.UserID == actor.ID
	isCreator := purchase.Service.CreatorID == actor.ID
	if !isBuyer && !isCreator && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !models.CanTransition(purchase.Status, target) {
		return nil, fmt.Errorf("%w: cannot transition purchase from %s to %s",
			ErrInvalidInput, purchase.Status, target)
	}

	// Buyers may only cancel their own pending purchases; settlement-side
	// transitions belong to the creator or admin.
	if isBuyer && !isCreator && !actor.IsAdmin() && target != models.PurchaseStatusCancelled {
		return nil, ErrForbidden
	}

	if err := s.purchaseRepo.UpdateStatus(id, target); err != nil {
		return nil, err
	}

	purchase.Status = target
	return &purchase, nil
}

// CompleteCheckout settles the purchase tied to a checkout session. Called
// from the payment webhook only; this is the single path that may move a
// purchase from PENDING_PAYMENT to COMPLETED.
func (s *PurchaseService) CompleteCheckout(checkoutSessionID string) (*models.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByCheckoutSessionID(checkoutSessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if purchase.Status == models.PurchaseStatusCompleted {
		// Webhook redelivery; nothing to do
		return &purchase, nil
	}

	if purchase.Status != models.PurchaseStatusPendingPayment {
		return nil, fmt.Errorf("%w: purchase is %s, not pending payment",
			ErrConflict, purchase.Status)
	}

	if err := s.purchaseRepo.UpdateStatus(purchase.ID, models.PurchaseStatusCompleted); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyOwned
		}
		return nil, err
	}

	purchase.Status = models.PurchaseStatusCompleted
	return &purchase, nil
}
