package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"tutorbase/config"
	tutorsRepo "tutorbase/database/repository/tutors"
	"tutorbase/services/booking"
	"tutorbase/utils"
)

const webhookMaxBodyBytes = int64(65536)

// PaymentHandler exposes Stripe checkout and its webhook. It needs the
// concrete booking service because payment flows are not part of the
// core booking interface.
type PaymentHandler struct {
	Svc *booking.DefaultBookingService
}

func NewPaymentHandler(svc *booking.DefaultBookingService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreateCheckoutHandler creates a Stripe checkout session and returns
// its redirect URL. The amount is recomputed server side.
func (h *PaymentHandler) CreateCheckoutHandler(c *gin.Context) {
	var input booking.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	url, err := h.Svc.CreateCheckoutSession(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, tutorsRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create checkout session: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhookHandler verifies the Stripe signature and finalizes the
// booking when a checkout session completes. Unhandled event types are
// acknowledged so Stripe stops retrying them.
func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookMaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			logger.Error("failed to parse checkout session from webhook", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}
		if err := h.Svc.FinalizeCheckout(c.Request.Context(), &sess); err != nil {
			logger.Error("failed to finalize checkout",
				zap.String("sessionID", sess.ID), zap.Error(err))
			// Non-2xx makes Stripe retry the delivery.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize checkout"})
			return
		}
	default:
		logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
