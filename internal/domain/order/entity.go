package order

import (
	"strings"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errs.New("invalid order status")
	ErrMissingSessionID     = errs.New("checkout session id is required")
	ErrNegativeAmount       = errs.New("order amounts cannot be negative")
	ErrDiscountExceedsTotal = errs.New("discount exceeds order amount")
)

type Order struct {
	id                 uuid.UUID
	userID             *uuid.UUID
	sessionID          string
	paymentIntentID    *string
	fulfillmentOrderID *string
	status             Status
	tracking           Tracking
	items              []LineItem
	totals             Totals
	discountCode       *string
	giftMessage        *string
	shippingName       string
	shippingAddress    Address
	customerEmail      string
	trackingToken      string
	createdAt          time.Time
	updatedAt          time.Time
}

type NewOrderParams struct {
	UserID             *uuid.UUID
	SessionID          string
	PaymentIntentID    *string
	FulfillmentOrderID *string
	Items              []LineItem
	Totals             Totals
	DiscountCode       *string
	GiftMessage        *string
	ShippingName       string
	ShippingAddress    Address
	CustomerEmail      string
}

// NewOrder builds a freshly paid order in the confirmed state with a new tracking token.
func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if strings.TrimSpace(p.SessionID) == "" {
		return nil, ErrMissingSessionID
	}

	token, err := NewTrackingToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate tracking token")
	}

	items := make([]LineItem, len(p.Items))
	copy(items, p.Items)

	return &Order{
		id:                 uuid.New(),
		userID:             p.UserID,
		sessionID:          p.SessionID,
		paymentIntentID:    p.PaymentIntentID,
		fulfillmentOrderID: p.FulfillmentOrderID,
		status:             StatusConfirmed,
		items:              items,
		totals:             p.Totals,
		discountCode:       p.DiscountCode,
		giftMessage:        p.GiftMessage,
		shippingName:       p.ShippingName,
		shippingAddress:    p.ShippingAddress,
		customerEmail:      strings.ToLower(strings.TrimSpace(p.CustomerEmail)),
		trackingToken:      token,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	UserID             *uuid.UUID
	SessionID          string
	PaymentIntentID    *string
	FulfillmentOrderID *string
	Status             Status
	Tracking           Tracking
	Items              []LineItem
	Totals             Totals
	DiscountCode       *string
	GiftMessage        *string
	ShippingName       string
	ShippingAddress    Address
	CustomerEmail      string
	TrackingToken      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:                 p.ID,
		userID:             p.UserID,
		sessionID:          p.SessionID,
		paymentIntentID:    p.PaymentIntentID,
		fulfillmentOrderID: p.FulfillmentOrderID,
		status:             p.Status,
		tracking:           p.Tracking,
		items:              p.Items,
		totals:             p.Totals,
		discountCode:       p.DiscountCode,
		giftMessage:        p.GiftMessage,
		shippingName:       p.ShippingName,
		shippingAddress:    p.ShippingAddress,
		customerEmail:      p.CustomerEmail,
		trackingToken:      p.TrackingToken,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

// DropDiscountCode detaches the code reference while keeping the amount the customer was charged.
func (o *Order) DropDiscountCode() {
	o.discountCode = nil
}

// SetDiscountCode references the code the discount was granted under.
func (o *Order) SetDiscountCode(code *string) {
	o.discountCode = code
}

func (o *Order) HasFulfillment() bool {
	return o.fulfillmentOrderID != nil && *o.fulfillmentOrderID != ""
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID != nil && *o.userID == userID
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) UserID() *uuid.UUID          { return o.userID }
func (o *Order) SessionID() string           { return o.sessionID }
func (o *Order) PaymentIntentID() *string    { return o.paymentIntentID }
func (o *Order) FulfillmentOrderID() *string { return o.fulfillmentOrderID }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Tracking() Tracking          { return o.tracking }
func (o *Order) Items() []LineItem           { return o.items }
func (o *Order) Totals() Totals              { return o.totals }
func (o *Order) DiscountCode() *string       { return o.discountCode }
func (o *Order) GiftMessage() *string        { return o.giftMessage }
func (o *Order) ShippingName() string        { return o.shippingName }
func (o *Order) ShippingAddress() Address    { return o.shippingAddress }
func (o *Order) CustomerEmail() string       { return o.customerEmail }
func (o *Order) TrackingToken() string       { return o.trackingToken }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }
