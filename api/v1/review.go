package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/services"
)

var reviewService = services.NewReviewService()

// ListReviews godoc
// @Summary List reviews
// @Description Filter by serviceId, userId or rating
// @Tags reviews
// @Accept json
// @Produce json
// @Param serviceId query string false "Service ID"
// @Param userId query string false "User ID"
// @Param rating query int false "Exact rating"
// @Success 200 {array} models.Review
// @Router /reviews [get]
func ListReviews(c *gin.Context) {
	rating, _ := strconv.Atoi(c.Query("rating"))

	reviews, err := reviewService.ListReviews(dto.ReviewFilter{
		ServiceID: c.Query("serviceId"),
		UserID:    c.Query("userId"),
		Rating:    rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   reviews,
	})
}

// CreateReview godoc
// @Summary Submit a review
// @Description One review per (user, service); rating must be 1-5
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} models.Review
// @Router /reviews [post]
func CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	review, err := reviewService.CreateReview(actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   review,
	})
}

// GetReview godoc
// @Summary Get a review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Review
// @Router /reviews/{id} [get]
func GetReview(c *gin.Context) {
	review, err := reviewService.GetReview(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   review,
	})
}

// UpdateReview godoc
// @Summary Edit a review
// @Description Author or admin only
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param review body dto.UpdateReviewRequest true "Review payload"
// @Success 200 {object} models.Review
// @Router /reviews/{id} [patch]
func UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	review, err := reviewService.UpdateReview(actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   review,
	})
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Author or admin only
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 204
// @Router /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	if err := reviewService.DeleteReview(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
