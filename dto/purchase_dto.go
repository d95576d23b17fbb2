package dto

// CreatePurchaseRequest represents the payload for the direct purchase path
type CreatePurchaseRequest struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// UpdatePurchaseRequest represents a status transition request
type UpdatePurchaseRequest struct {
	Status string `json:"status" binding:"required"`
}

// PurchaseFilter represents filter criteria for listing purchases
type PurchaseFilter struct {
	UserID  string
	Status  string
	IsAdmin bool
}

// CheckoutResponse carries the hosted checkout redirect URL
type CheckoutResponse struct {
	URL        string `json:"url"`
	PurchaseID string `json:"purchaseId"`
}
