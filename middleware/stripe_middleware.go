package middleware

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/tradecademy/marketplace/config"
)

// StripeEventKey is the context key the verified webhook event is stored under
const StripeEventKey = "stripe_event"

// StripeWebhookVerifier verifies the Stripe-Signature header against the raw
// request body and stashes the parsed event in the context. Unsigned or
// tampered payloads never reach the handler.
func StripeWebhookVerifier(c *gin.Context) {
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to read request body"})
		log.Printf("io.ReadAll: %v", err)
		c.Abort()
		return
	}

	event, err := webhook.ConstructEvent(b, c.Request.Header.Get("Stripe-Signature"), os.Getenv(config.EnvStripeWebhookSecret))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Webhook signature verification failed"})
		log.Printf("webhook.ConstructEvent: %v", err)
		c.Abort()
		return
	}

	c.Set(StripeEventKey, event)
	c.Next()
}
