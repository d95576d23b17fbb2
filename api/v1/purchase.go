package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/services"
)

var purchaseService = services.NewPurchaseService()

// ListPurchases godoc
// @Summary List the caller's purchases
// @Description Admins see all purchases; optional status filter
// @Tags purchases
// @Accept json
// @Produce json
// @Param status query string false "Purchase status"
// @Success 200 {array} models.Purchase
// @Router /purchases [get]
func ListPurchases(c *gin.Context) {
	purchases, err := purchaseService.ListPurchases(actorFromContext(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   purchases,
	})
}

// CreatePurchase godoc
// @Summary Purchase a service (direct path)
// @Description Creates a completed purchase with amount and currency copied from the service
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase payload"
// @Success 201 {object} models.Purchase
// @Router /purchases [post]
func CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	purchase, err := purchaseService.CreatePurchase(actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   purchase,
	})
}

// GetPurchase godoc
// @Summary Get a purchase by ID
// @Description Buyer, service creator or admin only
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} models.Purchase
// @Router /purchases/{id} [get]
func GetPurchase(c *gin.Context) {
	purchase, err := purchaseService.GetPurchase(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   purchase,
	})
}

// UpdatePurchase godoc
// @Summary Transition a purchase's status
// @Description Buyer, service creator or admin; validated against the status graph
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param purchase body dto.UpdatePurchaseRequest true "Target status"
// @Success 200 {object} models.Purchase
// @Router /purchases/{id} [patch]
func UpdatePurchase(c *gin.Context) {
	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	purchase, err := purchaseService.UpdatePurchase(
		actorFromContext(c),
		c.Param("id"),
		models.PurchaseStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   purchase,
	})
}
