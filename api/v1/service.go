package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/services"
)

var serviceService = services.NewServiceService()
var checkoutService = services.NewCheckoutService()

// ListServices godoc
// @Summary List services with pagination and filtering
// @Description Browse the catalog. Anonymous callers only see ACTIVE services.
// @Tags services
// @Accept json
// @Produce json
// @Param category query string false "Category ID"
// @Param type query string false "Service type"
// @Param status query string false "Service status (authenticated only)"
// @Param creatorId query string false "Creator ID"
// @Param query query string false "Search term for title/description"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.ServiceListResponse
// @Router /services [get]
func ListServices(c *gin.Context) {
	actor := actorFromContext(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.ServiceFilter{
		CategoryID:    c.Query("category"),
		Type:          c.Query("type"),
		Status:        c.Query("status"),
		CreatorID:     c.Query("creatorId"),
		Query:         c.Query("query"),
		SortBy:        c.DefaultQuery("sortBy", "created_at"),
		SortOrder:     c.DefaultQuery("sortOrder", "desc"),
		Page:          page,
		PageSize:      pageSize,
		Authenticated: actor.Authenticated,
		ActorID:       actor.ID,
		IsAdmin:       actor.IsAdmin(),
	}

	response, err := serviceService.ListServices(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateService godoc
// @Summary Publish a new service
// @Description Creates a service owned by the authenticated creator
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service payload"
// @Success 201 {object} dto.ServiceResponse
// @Router /services [post]
func CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	service, err := serviceService.CreateService(actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   service,
	})
}

// GetService godoc
// @Summary Get a service by ID
// @Description Returns the service with its category, tags, creator and rating aggregate
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Router /services/{id} [get]
func GetService(c *gin.Context) {
	service, err := serviceService.GetService(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   service,
	})
}

// UpdateService godoc
// @Summary Update a service
// @Description Owner or admin only. Replaces tags and content wholesale.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Service payload"
// @Success 200 {object} dto.ServiceResponse
// @Router /services/{id} [put]
func UpdateService(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	service, err := serviceService.UpdateService(actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   service,
	})
}

// DeleteService godoc
// @Summary Delete a service
// @Description Owner or admin only. Refused while completed purchases exist.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 204
// @Router /services/{id} [delete]
func DeleteService(c *gin.Context) {
	if err := serviceService.DeleteService(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PurchaseService godoc
// @Summary Start a hosted checkout for a service
// @Description Creates a Stripe checkout session and a pending purchase; returns the redirect URL
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.CheckoutResponse
// @Router /services/{id}/purchase [post]
func PurchaseService(c *gin.Context) {
	checkout, err := checkoutService.CreateCheckoutSession(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   checkout,
	})
}
