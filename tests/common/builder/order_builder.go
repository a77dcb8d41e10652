//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/ptr"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID                 uuid.UUID
	UserID             *uuid.UUID
	SessionID          string
	PaymentIntentID    *string
	FulfillmentOrderID *string
	Status             order.Status
	Tracking           order.Tracking
	Items              []order.LineItem
	Subtotal           int64
	ShippingCost       int64
	DiscountAmount     int64
	DiscountCode       *string
	GiftMessage        *string
	ShippingName       string
	ShippingAddress    order.Address
	CustomerEmail      string
	TrackingToken      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	return &OrderBuilder{
		ID:                 id,
		SessionID:          "cs_test_" + id.String()[:8],
		PaymentIntentID:    ptr.Of("pi_test_" + id.String()[:8]),
		FulfillmentOrderID: ptr.Of("pf_" + id.String()[:8]),
		Status:             order.StatusConfirmed,
		Items: []order.LineItem{
			{ProductID: "tee-black", Name: "Black Tee", Size: "M", Color: "black", Quantity: 2, UnitPrice: 2500},
		},
		Subtotal:     5000,
		ShippingCost: 500,
		ShippingName: "Ada Lovelace",
		ShippingAddress: order.Address{
			Line1:      "1 Main St",
			City:       "Portland",
			State:      "OR",
			PostalCode: "97201",
			Country:    "US",
		},
		CustomerEmail: "ada@example.com",
		TrackingToken: "tok_" + id.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithTracking(tr order.Tracking) *OrderBuilder {
	b.Tracking = tr
	return b
}

func (b *OrderBuilder) WithEmail(email string) *OrderBuilder {
	b.CustomerEmail = email
	return b
}

func (b *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	b.UserID = &id
	return b
}

func (b *OrderBuilder) AsGuest() *OrderBuilder {
	b.UserID = nil
	return b
}

func (b *OrderBuilder) WithSessionID(id string) *OrderBuilder {
	b.SessionID = id
	return b
}

func (b *OrderBuilder) WithFulfillmentOrderID(id string) *OrderBuilder {
	b.FulfillmentOrderID = &id
	return b
}

func (b *OrderBuilder) WithoutFulfillment() *OrderBuilder {
	b.FulfillmentOrderID = nil
	return b
}

func (b *OrderBuilder) WithItems(items ...order.LineItem) *OrderBuilder {
	b.Items = items
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	b.Subtotal = subtotal
	return b
}

func (b *OrderBuilder) WithDiscount(code string, amount int64) *OrderBuilder {
	b.DiscountCode = &code
	b.DiscountAmount = amount
	return b
}

func (b *OrderBuilder) WithGiftMessage(msg string) *OrderBuilder {
	b.GiftMessage = &msg
	return b
}

func (b *OrderBuilder) WithTrackingToken(token string) *OrderBuilder {
	b.TrackingToken = token
	return b
}

func (b *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *order.Order {
	totals, err := order.NewTotals(b.Subtotal, b.ShippingCost, b.DiscountAmount)
	if err != nil {
		panic(err)
	}
	items := make([]order.LineItem, len(b.Items))
	copy(items, b.Items)
	return order.Reconstruct(order.ReconstructParams{
		ID:                 b.ID,
		UserID:             b.UserID,
		SessionID:          b.SessionID,
		PaymentIntentID:    b.PaymentIntentID,
		FulfillmentOrderID: b.FulfillmentOrderID,
		Status:             b.Status,
		Tracking:           b.Tracking,
		Items:              items,
		Totals:             totals,
		DiscountCode:       b.DiscountCode,
		GiftMessage:        b.GiftMessage,
		ShippingName:       b.ShippingName,
		ShippingAddress:    b.ShippingAddress,
		CustomerEmail:      b.CustomerEmail,
		TrackingToken:      b.TrackingToken,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	})
}
