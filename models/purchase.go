package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseStatus represents the settlement state of a purchase
type PurchaseStatus string

const (
	PurchaseStatusPendingPayment PurchaseStatus = "PENDING_PAYMENT"
	PurchaseStatusCompleted      PurchaseStatus = "COMPLETED"
	PurchaseStatusCancelled      PurchaseStatus = "CANCELLED"
	PurchaseStatusRefunded       PurchaseStatus = "REFUNDED"
	PurchaseStatusDisputed       PurchaseStatus = "DISPUTED"
)

// ValidPurchaseStatus reports whether s is one of the enumerated statuses
func ValidPurchaseStatus(s PurchaseStatus) bool {
	switch s {
	case PurchaseStatusPendingPayment, PurchaseStatusCompleted,
		PurchaseStatusCancelled, PurchaseStatusRefunded, PurchaseStatusDisputed:
		return true
	}
	return false
}

// purchaseTransitions is the allowed status graph. COMPLETED is deliberately
// absent as a PATCH target: only the payment webhook may move
// PENDING_PAYMENT -> COMPLETED.
var purchaseTransitions = map[PurchaseStatus][]PurchaseStatus{
	PurchaseStatusPendingPayment: {PurchaseStatusCancelled},
	PurchaseStatusCompleted:      {PurchaseStatusRefunded, PurchaseStatusDisputed},
	PurchaseStatusDisputed:       {PurchaseStatusCompleted, PurchaseStatusRefunded},
}

// CanTransition reports whether a purchase may move from one status to another
// through the PATCH surface
func CanTransition(from, to PurchaseStatus) bool {
	for _, next := range purchaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Purchase records a buyer's acquisition of a service. The partial unique
// index allows re-purchase after a cancellation or refund while guaranteeing
// at most one COMPLETED purchase per (user, service).
type Purchase struct {
	ID       string         `json:"id" gorm:"primaryKey;type:uuid"`
	Amount   float64        `json:"amount" gorm:"not null"`
	Currency string         `json:"currency" gorm:"type:varchar(3);default:'USD'"`
	Status   PurchaseStatus `json:"status" gorm:"type:varchar(20);default:'PENDING_PAYMENT';index"`

	PaymentMethodID   string `json:"paymentMethodId" gorm:"default:null"`
	CheckoutSessionID string `json:"-" gorm:"default:null;index"`

	UserID    string `json:"userId" gorm:"type:uuid;not null;uniqueIndex:uniq_completed_purchase,where:status = 'COMPLETED'"`
	ServiceID string `json:"serviceId" gorm:"type:uuid;not null;uniqueIndex:uniq_completed_purchase,where:status = 'COMPLETED'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Service Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
