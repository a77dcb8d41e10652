package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	q queries.DiscountQueries
}

func NewDiscountHandler(q queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{q: q}
}

// @Summary Validate discount code
// @Description Check a code against a cart subtotal. Ineligible codes return 200 with valid=false and a message.
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateDiscountRequest true "Validation request"
// @Success 200 {object} resdto.DiscountValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /discounts/validate [post]
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	_, authenticated := middleware.GetActor(c)

	result, err := h.q.Validate(c.Request.Context(), req.Code, *req.Subtotal, authenticated)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to validate discount code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountValidation(result))
}
