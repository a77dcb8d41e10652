package discount

import (
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind  = errs.New("invalid discount type")
	ErrInvalidValue = errs.New("discount value out of range")
)

const (
	MessageInvalid      = "Invalid discount code"
	MessageExpired      = "This discount code has expired"
	MessageNotYetActive = "This discount code is not yet active"
	MessageExhausted    = "This discount code is no longer available"
	MessageMembersOnly  = "This discount code is for members only. Please sign in to use it."
)

type Code struct {
	id             uuid.UUID
	code           string
	kind           Kind
	value          int64
	minOrderAmount int64
	maxUses        *int32
	currentUses    int32
	membersOnly    bool
	active         bool
	startsAt       *time.Time
	expiresAt      *time.Time
	description    string
}

type Params struct {
	ID             uuid.UUID
	Code           string
	Kind           Kind
	Value          int64
	MinOrderAmount int64
	MaxUses        *int32
	CurrentUses    int32
	MembersOnly    bool
	Active         bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	Description    string
}

func NewCode(p Params) (*Code, error) {
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if p.Value < 0 || (p.Kind == KindPercentage && p.Value > 100) || p.MinOrderAmount < 0 {
		return nil, ErrInvalidValue
	}
	return &Code{
		id:             p.ID,
		code:           NormalizeCode(p.Code),
		kind:           p.Kind,
		value:          p.Value,
		minOrderAmount: p.MinOrderAmount,
		maxUses:        p.MaxUses,
		currentUses:    p.CurrentUses,
		membersOnly:    p.MembersOnly,
		active:         p.Active,
		startsAt:       p.StartsAt,
		expiresAt:      p.ExpiresAt,
		description:    p.Description,
	}, nil
}

// Evaluation is the outcome of an eligibility check. Message is customer facing.
type Evaluation struct {
	Valid          bool
	Reason         Reason
	Message        string
	DiscountAmount int64
}

func Invalid() Evaluation {
	return Evaluation{Reason: ReasonInvalid, Message: MessageInvalid}
}

// Evaluate applies the eligibility rules in order and stops at the first failure.
func (c *Code) Evaluate(subtotal int64, authenticated bool, now time.Time) Evaluation {
	if c == nil || !c.active {
		return Invalid()
	}
	if c.expiresAt != nil && c.expiresAt.Before(now) {
		return Evaluation{Reason: ReasonExpired, Message: MessageExpired}
	}
	if c.startsAt != nil && c.startsAt.After(now) {
		return Evaluation{Reason: ReasonNotYetActive, Message: MessageNotYetActive}
	}
	if c.IsExhausted() {
		return Evaluation{Reason: ReasonExhausted, Message: MessageExhausted}
	}
	if c.membersOnly && !authenticated {
		return Evaluation{Reason: ReasonMembersOnly, Message: MessageMembersOnly}
	}
	if subtotal < c.minOrderAmount {
		return Evaluation{
			Reason:  ReasonBelowMinimum,
			Message: "Minimum order of " + money.Format(c.minOrderAmount) + " required",
		}
	}
	return Evaluation{Valid: true, DiscountAmount: c.AmountFor(subtotal)}
}

// AmountFor never discounts below zero.
func (c *Code) AmountFor(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	switch c.kind {
	case KindPercentage:
		return money.Min(money.PercentOf(subtotal, c.value), subtotal)
	case KindFixed:
		return money.Min(c.value, subtotal)
	default:
		return 0
	}
}

func (c *Code) IsExhausted() bool {
	return c.maxUses != nil && c.currentUses >= *c.maxUses
}

func (c *Code) ID() uuid.UUID         { return c.id }
func (c *Code) Code() string          { return c.code }
func (c *Code) Kind() Kind            { return c.kind }
func (c *Code) Value() int64          { return c.value }
func (c *Code) MinOrderAmount() int64 { return c.minOrderAmount }
func (c *Code) MaxUses() *int32       { return c.maxUses }
func (c *Code) CurrentUses() int32    { return c.currentUses }
func (c *Code) MembersOnly() bool     { return c.membersOnly }
func (c *Code) Active() bool          { return c.active }
func (c *Code) StartsAt() *time.Time  { return c.startsAt }
func (c *Code) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Code) Description() string   { return c.description }
