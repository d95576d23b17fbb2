package v1

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/tradecademy/marketplace/middleware"
)

// StripeWebhook consumes payment events verified by StripeWebhookVerifier.
// checkout.session.completed settles the pending purchase tied to the session;
// everything else is logged and acknowledged.
func StripeWebhook(c *gin.Context) {
	value, exists := c.Get(middleware.StripeEventKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing webhook event",
		})
		return
	}

	event := value.(stripe.Event)

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			log.Printf("failed to parse checkout session: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Malformed event payload",
			})
			return
		}

		purchase, err := purchaseService.CompleteCheckout(session.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		log.Printf("purchase %s completed via checkout session %s", purchase.ID, session.ID)

	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
