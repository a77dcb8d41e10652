package queries

import (
	"time"

	"github.com/google/uuid"
)

// OrderView is the customer-facing order shape for account pages.
type OrderView struct {
	ID                uuid.UUID       `json:"id"`
	UserID            *uuid.UUID      `json:"-"`
	Status            string          `json:"status"`
	Items             []OrderItemView `json:"items"`
	Subtotal          int64           `json:"subtotal"`
	ShippingCost      int64           `json:"shipping_cost"`
	DiscountAmount    int64           `json:"discount_amount"`
	Total             int64           `json:"total"`
	DiscountCode      *string         `json:"discount_code,omitempty"`
	GiftMessage       *string         `json:"gift_message,omitempty"`
	ShippingName      string          `json:"shipping_name"`
	ShippingAddress   AddressView     `json:"shipping_address"`
	CustomerEmail     string          `json:"customer_email"`
	TrackingNumber    *string         `json:"tracking_number,omitempty"`
	TrackingURL       *string         `json:"tracking_url,omitempty"`
	Carrier           *string         `json:"carrier,omitempty"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type OrderItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image,omitempty"`
}

type AddressView struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// DiscountCodeView carries everything needed to evaluate a code. It is never serialized to clients.
type DiscountCodeView struct {
	ID             uuid.UUID
	Code           string
	Kind           string
	Value          int64
	MinOrderAmount int64
	MaxUses        *int32
	CurrentUses    int32
	MembersOnly    bool
	IsActive       bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	Description    string
}

type DiscountValidation struct {
	Valid          bool   `json:"valid"`
	Code           string `json:"code,omitempty"`
	Kind           string `json:"discount_type,omitempty"`
	Value          int64  `json:"value,omitempty"`
	DiscountAmount int64  `json:"discount_amount"`
	Description    string `json:"description,omitempty"`
	Message        string `json:"message,omitempty"`
	Reason         string `json:"-"`
}
