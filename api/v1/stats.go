package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/services"
)

var statsService = services.NewStatsService()

// GetMarketplaceStats godoc
// @Summary Marketplace overview statistics
// @Description Admin dashboard counters: users, services, purchases, reviews
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.MarketplaceStatsResponse
// @Router /admin/stats/overview [get]
func GetMarketplaceStats(c *gin.Context) {
	stats, err := statsService.GetOverview()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// GetServiceAnalytics godoc
// @Summary Per-service creator analytics
// @Description Purchase counts, gross revenue and review aggregate for one service. Owner or admin only.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceAnalyticsResponse
// @Router /services/{id}/analytics [get]
func GetServiceAnalytics(c *gin.Context) {
	analytics, err := statsService.GetServiceAnalytics(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   analytics,
	})
}

// ListUsers godoc
// @Summary List all users
// @Description Admin only
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {array} models.User
// @Router /admin/users [get]
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}
