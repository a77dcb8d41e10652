package response

import "storefront/internal/usecase/queries"

// DiscountValidationResponse never carries usage counters.
type DiscountValidationResponse struct {
	Valid          bool   `json:"valid"`
	Code           string `json:"code,omitempty"`
	DiscountType   string `json:"discount_type,omitempty"`
	Value          int64  `json:"value,omitempty"`
	DiscountAmount int64  `json:"discount_amount"`
	Description    string `json:"description,omitempty"`
	Message        string `json:"message,omitempty"`
}

func FromDiscountValidation(v *queries.DiscountValidation) *DiscountValidationResponse {
	return &DiscountValidationResponse{
		Valid:          v.Valid,
		Code:           v.Code,
		DiscountType:   v.Kind,
		Value:          v.Value,
		DiscountAmount: v.DiscountAmount,
		Description:    v.Description,
		Message:        v.Message,
	}
}
