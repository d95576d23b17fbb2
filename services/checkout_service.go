package services

import (
	"errors"
	"math"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/tradecademy/marketplace/config"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/repositories"
	"gorm.io/gorm"
)

// CheckoutService handles the hosted-checkout purchase path
type CheckoutService struct {
	purchaseService *PurchaseService
	purchaseRepo    *repositories.PurchaseRepository
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService() *CheckoutService {
	return &CheckoutService{
		purchaseService: NewPurchaseService(),
		purchaseRepo:    repositories.NewPurchaseRepository(),
	}
}

// CreateCheckoutSession runs the purchase preconditions, opens a Stripe hosted
// checkout session for the service and records a PENDING_PAYMENT purchase tied
// to it. The webhook settles the purchase once payment confirms.
func (s *CheckoutService) CreateCheckoutSession(actor Actor, serviceID string) (*dto.CheckoutResponse, error) {
	service, err := s.purchaseService.checkPurchasable(actor, serviceID)
	if err != nil {
		return nil, err
	}

	secretKey := os.Getenv(config.EnvStripeSecretKey)
	if secretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY not set in environment")
	}
	stripe.Key = secretKey

	successURL := config.GetEnv(config.EnvCheckoutSuccessURL, "http://localhost:3000/purchases?success=true")
	cancelURL := config.GetEnv(config.EnvCheckoutCancelURL, "http://localhost:3000/purchases?canceled=true")

	params := &stripe.CheckoutSessionParams{
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(service.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(service.Title),
					},
					// Stripe amounts are in the smallest currency unit
					UnitAmount: stripe.Int64(int64(math.Round(service.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"serviceId": service.ID,
			"userId":    actor.ID,
			"creatorId": service.CreatorID,
		},
	}

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, err
	}

	purchase := models.Purchase{
		Amount:            service.Price,
		Currency:          service.Currency,
		Status:            models.PurchaseStatusPendingPayment,
		CheckoutSessionID: checkoutSession.ID,
		UserID:            actor.ID,
		ServiceID:         service.ID,
	}

	purchase, err = s.purchaseRepo.Create(purchase)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyOwned
		}
		return nil, err
	}

	return &dto.CheckoutResponse{
		URL:        checkoutSession.URL,
		PurchaseID: purchase.ID,
	}, nil
}
