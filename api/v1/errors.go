package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/models"
	"github.com/tradecademy/marketplace/services"
)

// respondError maps service-layer sentinel errors onto HTTP status codes.
// Unknown errors are logged server-side and surfaced as an opaque 500 so
// store-specific error text never leaks to clients.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnavailable),
		errors.Is(err, services.ErrSelfPurchase):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyOwned),
		errors.Is(err, services.ErrAlreadyReviewed):
		status = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
		return
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// actorFromContext builds the authorization actor from whatever the auth
// middleware put in the context. Anonymous requests yield an
// unauthenticated actor.
func actorFromContext(c *gin.Context) services.Actor {
	userID, exists := c.Get("userId")
	if !exists {
		return services.Actor{}
	}

	role, _ := c.Get("role")
	roleStr, _ := role.(string)

	return services.Actor{
		ID:            userID.(string),
		Role:          models.Role(roleStr),
		Authenticated: true,
	}
}
