package order

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// LineItem is a denormalized snapshot taken at purchase time.
type LineItem struct {
	ProductID string
	Name      string
	Size      string
	Color     string
	Quantity  int
	UnitPrice int64
	Image     string
}

func (li LineItem) LineTotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type Totals struct {
	subtotal       int64
	shippingCost   int64
	discountAmount int64
}

func NewTotals(subtotal, shippingCost, discountAmount int64) (Totals, error) {
	if subtotal < 0 || shippingCost < 0 || discountAmount < 0 {
		return Totals{}, ErrNegativeAmount
	}
	if discountAmount > subtotal+shippingCost {
		return Totals{}, ErrDiscountExceedsTotal
	}
	return Totals{
		subtotal:       subtotal,
		shippingCost:   shippingCost,
		discountAmount: discountAmount,
	}, nil
}

func (t Totals) Subtotal() int64       { return t.subtotal }
func (t Totals) ShippingCost() int64   { return t.shippingCost }
func (t Totals) DiscountAmount() int64 { return t.discountAmount }

// Total is derived, never stored independently of its parts.
func (t Totals) Total() int64 {
	return t.subtotal + t.shippingCost - t.discountAmount
}

type Tracking struct {
	Number            *string
	URL               *string
	Carrier           *string
	ShippedAt         *time.Time
	EstimatedDelivery *time.Time
}

const trackingTokenBytes = 24

func NewTrackingToken() (string, error) {
	buf := make([]byte, trackingTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
