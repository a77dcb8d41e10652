package commands

import (
	"context"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as established by the bearer token.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == user.RoleAdmin
}

// =============================================================================
// Payment provider
// =============================================================================

const EventCheckoutSessionCompleted = "checkout.session.completed"

// CheckoutSession is the subset of a completed checkout session the order is built from.
type CheckoutSession struct {
	SessionID       string
	PaymentIntentID string
	CustomerEmail   string
	ShippingName    string
	ShippingAddress order.Address
	AmountSubtotal  int64
	AmountShipping  int64
	AmountDiscount  int64
	AmountTotal     int64
	Metadata        map[string]string
}

type PaymentEvent struct {
	ID       string
	Type     string
	Checkout *CheckoutSession
}

// PaymentEventParser authenticates a raw webhook delivery and decodes it.
type PaymentEventParser interface {
	Parse(payload []byte, signatureHeader string) (*PaymentEvent, error)
}

// =============================================================================
// Fulfillment provider
// =============================================================================

type Recipient struct {
	Name    string
	Email   string
	Address order.Address
}

type FulfillmentOrderRequest struct {
	ExternalID  string
	Recipient   Recipient
	Items       []catalog.FulfillmentLine
	GiftMessage *string
	RetailCosts RetailCosts
}

type RetailCosts struct {
	Subtotal int64
	Shipping int64
	Discount int64
	Total    int64
}

type FulfillmentOrder struct {
	ID        string
	Status    string
	Shipments []order.Shipment
}

// LatestShipment returns the last shipment reported by the provider, if any.
func (f *FulfillmentOrder) LatestShipment() *order.Shipment {
	if f == nil || len(f.Shipments) == 0 {
		return nil
	}
	s := f.Shipments[len(f.Shipments)-1]
	return &s
}

type FulfillmentClient interface {
	// CreateOrder submits and confirms an order in one call.
	CreateOrder(ctx context.Context, req FulfillmentOrderRequest) (*FulfillmentOrder, error)
	GetOrder(ctx context.Context, fulfillmentOrderID string) (*FulfillmentOrder, error)
}

type FulfillmentEvent struct {
	Type       string
	OrderID    string
	ExternalID string
	Status     string
	Shipment   *order.Shipment
}

type FulfillmentEventParser interface {
	Parse(payload []byte, signatureHeader string) (*FulfillmentEvent, error)
}

// =============================================================================
// Notifications, challenge, events, locks
// =============================================================================

type Notifier interface {
	OrderConfirmed(ctx context.Context, o *order.Order) error
	OrderShipped(ctx context.Context, o *order.Order) error
	OrderDelivered(ctx context.Context, o *order.Order) error
	TrackingRecovery(ctx context.Context, email string, orders []*order.Order) error
}

type ChallengeVerifier interface {
	// Verify consumes the token. A token is accepted at most once.
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type           string     `json:"type"`
	OrderID        uuid.UUID  `json:"order_id"`
	SessionID      string     `json:"session_id"`
	Status         string     `json:"status"`
	PreviousStatus string     `json:"previous_status,omitempty"`
	TrackingNumber *string    `json:"tracking_number,omitempty"`
	Total          int64      `json:"total"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, event OrderEvent) error
}

type Locker interface {
	// Acquire returns ok=false when another holder owns key. release is nil unless ok.
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}
