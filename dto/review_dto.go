package dto

// CreateReviewRequest represents the payload for submitting a review
type CreateReviewRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

// UpdateReviewRequest represents the payload for editing a review
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// ReviewFilter represents filter criteria for listing reviews
type ReviewFilter struct {
	ServiceID string
	UserID    string
	Rating    int
}
