package api

import (
	"io"
	"net/http"

	"storefront/internal/handler/httperr"
	"storefront/internal/infra/fulfillment"
	"storefront/internal/infra/payment"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody bounds how much of a delivery is read before signature verification.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	checkout    commands.CheckoutCommands
	fulfillment commands.FulfillmentCommands
}

func NewWebhookHandler(checkout commands.CheckoutCommands, fulfillment commands.FulfillmentCommands) *WebhookHandler {
	return &WebhookHandler{checkout: checkout, fulfillment: fulfillment}
}

// @Summary Payment webhook
// @Description Receives signed checkout events from the payment provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := readRawBody(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	err = h.checkout.HandlePaymentWebhook(c.Request.Context(), payload, c.GetHeader(payment.SignatureHeader))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case errs.Is(err, errs.ErrInvalidSignature):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook signature verification failed", nil)
	default:
		// 5xx makes the provider redeliver
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
	}
}

// @Summary Fulfillment webhook
// @Description Receives shipment and order status events from the fulfillment provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /webhooks/printful [post]
func (h *WebhookHandler) Printful(c *gin.Context) {
	payload, err := readRawBody(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	err = h.fulfillment.HandleWebhook(c.Request.Context(), payload, c.GetHeader(fulfillment.SignatureHeader))
	if err != nil && errs.Is(err, errs.ErrInvalidSignature) {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid signature", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func readRawBody(c *gin.Context) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
}
