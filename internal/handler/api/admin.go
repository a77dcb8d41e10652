package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	fulfillment commands.FulfillmentCommands
}

func NewAdminHandler(fulfillment commands.FulfillmentCommands) *AdminHandler {
	return &AdminHandler{fulfillment: fulfillment}
}

// @Summary Retry fulfillment
// @Description Resubmit a paid order to the fulfillment provider when the original submission failed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.RetryFulfillmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/orders/{id}/fulfillment/retry [post]
func (h *AdminHandler) RetryFulfillment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, _ := middleware.GetActor(c)

	result, err := h.fulfillment.RetryFulfillment(c.Request.Context(), id, actor)
	if err != nil {
		status, msg := retryErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRetryResult(result))
}

func retryErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, errs.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errs.Is(err, errs.ErrFulfillmentExists):
		return http.StatusConflict, "Order already has a fulfillment order"
	case errs.Is(err, errs.ErrFulfillmentInFlight):
		return http.StatusConflict, "A retry for this order is already in progress"
	case errs.Is(err, errs.ErrNothingToFulfill):
		return http.StatusUnprocessableEntity, "No items in this order can be fulfilled"
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "Fulfillment provider request failed"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
