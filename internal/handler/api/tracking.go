package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	cmds commands.TrackingCommands
}

func NewTrackingHandler(cmds commands.TrackingCommands) *TrackingHandler {
	return &TrackingHandler{cmds: cmds}
}

// @Summary Track order
// @Description Look up shipment status by order id (signed in) or by tracking token, optionally refreshing from the provider
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body reqdto.TrackOrderRequest true "Track request"
// @Success 200 {object} resdto.TrackingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/track [post]
func (h *TrackingHandler) Track(c *gin.Context) {
	var req reqdto.TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !req.HasIdentifier() {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("order id or tracking token required"), "Order ID or tracking token is required", nil)
		return
	}
	actor, _ := middleware.GetActor(c)
	cmd, err := req.ToCommand(actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	result, err := h.cmds.Track(c.Request.Context(), cmd)
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrackingResult(result))
}

// @Summary Recover tracking links
// @Description Emails tracking links for every guest order placed with the address. The response does not reveal whether orders exist.
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body reqdto.RecoverTrackingRequest true "Recovery request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/track/recover [post]
func (h *TrackingHandler) Recover(c *gin.Context) {
	var req reqdto.RecoverTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RecoverByEmail(c.Request.Context(), req.ToCommand(c.ClientIP())); err != nil {
		if errs.Is(err, errs.ErrChallengeFailed) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Verification failed. Please try again.", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
