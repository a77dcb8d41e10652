package request

type ValidateDiscountRequest struct {
	Code string `json:"code" binding:"required,max=64"`
	// Subtotal is in minor units.
	Subtotal *int64 `json:"subtotal" binding:"required,min=0"`
}
