package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from PurchaseStatus
		to   PurchaseStatus
		want bool
	}{
		{PurchaseStatusPendingPayment, PurchaseStatusCancelled, true},
		{PurchaseStatusPendingPayment, PurchaseStatusCompleted, false},
		{PurchaseStatusPendingPayment, PurchaseStatusRefunded, false},
		{PurchaseStatusCompleted, PurchaseStatusRefunded, true},
		{PurchaseStatusCompleted, PurchaseStatusDisputed, true},
		{PurchaseStatusCompleted, PurchaseStatusCancelled, false},
		{PurchaseStatusCompleted, PurchaseStatusPendingPayment, false},
		{PurchaseStatusDisputed, PurchaseStatusCompleted, true},
		{PurchaseStatusDisputed, PurchaseStatusRefunded, true},
		{PurchaseStatusDisputed, PurchaseStatusCancelled, false},
		{PurchaseStatusCancelled, PurchaseStatusCompleted, false},
		{PurchaseStatusRefunded, PurchaseStatusCompleted, false},
		{PurchaseStatusRefunded, PurchaseStatusDisputed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidPurchaseStatus(t *testing.T) {
	for _, s := range []PurchaseStatus{
		PurchaseStatusPendingPayment, PurchaseStatusCompleted,
		PurchaseStatusCancelled, PurchaseStatusRefunded, PurchaseStatusDisputed,
	} {
		if !ValidPurchaseStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []PurchaseStatus{"", "PAID", "pending_payment"} {
		if ValidPurchaseStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
