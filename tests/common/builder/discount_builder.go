//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/discount"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	ID             uuid.UUID
	Code           string
	Kind           discount.Kind
	Value          int64
	MinOrderAmount int64
	MaxUses        *int32
	CurrentUses    int32
	RequiresMember bool
	Active         bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	Description    string
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:          uuid.New(),
		Code:        "SUMMER20",
		Kind:        discount.KindPercentage,
		Value:       20,
		Active:      true,
		Description: "Summer sale",
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *DiscountBuilder) WithCode(code string) *DiscountBuilder {
	b.Code = code
	return b
}

func (b *DiscountBuilder) WithKind(kind discount.Kind) *DiscountBuilder {
	b.Kind = kind
	return b
}

func (b *DiscountBuilder) WithValue(v int64) *DiscountBuilder {
	b.Value = v
	return b
}

func (b *DiscountBuilder) WithMinOrderAmount(v int64) *DiscountBuilder {
	b.MinOrderAmount = v
	return b
}

func (b *DiscountBuilder) WithMaxUses(n int) *DiscountBuilder {
	v := int32(n)
	b.MaxUses = &v
	return b
}

func (b *DiscountBuilder) WithCurrentUses(n int) *DiscountBuilder {
	b.CurrentUses = int32(n)
	return b
}

func (b *DiscountBuilder) MembersOnly() *DiscountBuilder {
	b.RequiresMember = true
	return b
}

func (b *DiscountBuilder) Inactive() *DiscountBuilder {
	b.Active = false
	return b
}

func (b *DiscountBuilder) WithStartsAt(t time.Time) *DiscountBuilder {
	b.StartsAt = &t
	return b
}

func (b *DiscountBuilder) WithExpiresAt(t time.Time) *DiscountBuilder {
	b.ExpiresAt = &t
	return b
}

// Build methods
func (b *DiscountBuilder) BuildDomain() (*discount.Code, error) {
	return discount.NewCode(discount.Params{
		ID:             b.ID,
		Code:           b.Code,
		Kind:           b.Kind,
		Value:          b.Value,
		MinOrderAmount: b.MinOrderAmount,
		MaxUses:        b.MaxUses,
		CurrentUses:    b.CurrentUses,
		MembersOnly:    b.RequiresMember,
		Active:         b.Active,
		StartsAt:       b.StartsAt,
		ExpiresAt:      b.ExpiresAt,
		Description:    b.Description,
	})
}
