//go:build unit

package discount_test

import (
	"testing"
	"time"

	"storefront/internal/domain/discount"
	"storefront/internal/pkg/ptr"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCode_Evaluate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*builder.DiscountBuilder)
		subtotal      int64
		authenticated bool
		wantValid     bool
		wantReason    discount.Reason
		wantMessage   string
		wantAmount    int64
	}{
		{
			name:       "percentage 20 of 10000",
			mutate:     func(b *builder.DiscountBuilder) { b.WithKind(discount.KindPercentage).WithValue(20) },
			subtotal:   10000,
			wantValid:  true,
			wantAmount: 2000,
		},
		{
			name:       "fixed 500 capped at subtotal 300",
			mutate:     func(b *builder.DiscountBuilder) { b.WithKind(discount.KindFixed).WithValue(500) },
			subtotal:   300,
			wantValid:  true,
			wantAmount: 300,
		},
		{
			name:       "percentage rounds half up",
			mutate:     func(b *builder.DiscountBuilder) { b.WithKind(discount.KindPercentage).WithValue(15) },
			subtotal:   1010,
			wantValid:  true,
			wantAmount: 152,
		},
		{
			name:        "inactive is indistinguishable from unknown",
			mutate:      func(b *builder.DiscountBuilder) { b.Inactive() },
			subtotal:    10000,
			wantReason:  discount.ReasonInvalid,
			wantMessage: discount.MessageInvalid,
		},
		{
			name:        "expired",
			mutate:      func(b *builder.DiscountBuilder) { b.WithExpiresAt(now.Add(-time.Minute)) },
			subtotal:    10000,
			wantReason:  discount.ReasonExpired,
			wantMessage: discount.MessageExpired,
		},
		{
			name:        "not yet active",
			mutate:      func(b *builder.DiscountBuilder) { b.WithStartsAt(now.Add(time.Hour)) },
			subtotal:    10000,
			wantReason:  discount.ReasonNotYetActive,
			wantMessage: discount.MessageNotYetActive,
		},
		{
			name:        "usage cap reached",
			mutate:      func(b *builder.DiscountBuilder) { b.WithMaxUses(5).WithCurrentUses(5) },
			subtotal:    10000,
			wantReason:  discount.ReasonExhausted,
			wantMessage: discount.MessageExhausted,
		},
		{
			name:       "under usage cap",
			mutate:     func(b *builder.DiscountBuilder) { b.WithMaxUses(5).WithCurrentUses(4) },
			subtotal:   10000,
			wantValid:  true,
			wantAmount: 2000,
		},
		{
			name:        "members only without session",
			mutate:      func(b *builder.DiscountBuilder) { b.MembersOnly() },
			subtotal:    10000,
			wantReason:  discount.ReasonMembersOnly,
			wantMessage: discount.MessageMembersOnly,
		},
		{
			name:          "members only with session",
			mutate:        func(b *builder.DiscountBuilder) { b.MembersOnly() },
			subtotal:      10000,
			authenticated: true,
			wantValid:     true,
			wantAmount:    2000,
		},
		{
			name:        "below minimum",
			mutate:      func(b *builder.DiscountBuilder) { b.WithMinOrderAmount(5000) },
			subtotal:    4999,
			wantReason:  discount.ReasonBelowMinimum,
			wantMessage: "Minimum order of $50.00 required",
		},
		{
			name:       "exactly at minimum",
			mutate:     func(b *builder.DiscountBuilder) { b.WithMinOrderAmount(5000) },
			subtotal:   5000,
			wantValid:  true,
			wantAmount: 1000,
		},
		{
			name: "expiry is checked before the usage cap",
			mutate: func(b *builder.DiscountBuilder) {
				b.WithExpiresAt(now.Add(-time.Hour)).WithMaxUses(1).WithCurrentUses(1)
			},
			subtotal:    10000,
			wantReason:  discount.ReasonExpired,
			wantMessage: discount.MessageExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := builder.NewDiscountBuilder().With(tt.mutate).BuildDomain()
			require.NoError(t, err)

			got := code.Evaluate(tt.subtotal, tt.authenticated, now)

			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantAmount, got.DiscountAmount)
		})
	}
}

func TestCode_Evaluate_Nil(t *testing.T) {
	var code *discount.Code
	got := code.Evaluate(1000, true, now)
	assert.False(t, got.Valid)
	assert.Equal(t, discount.MessageInvalid, got.Message)
}

func TestNewCode(t *testing.T) {
	t.Run("normalizes code", func(t *testing.T) {
		code, err := discount.NewCode(discount.Params{Code: " summer20 ", Kind: discount.KindFixed, Value: 100, Active: true})
		require.NoError(t, err)
		assert.Equal(t, "SUMMER20", code.Code())
	})

	t.Run("rejects percentage over 100", func(t *testing.T) {
		_, err := discount.NewCode(discount.Params{Code: "X", Kind: discount.KindPercentage, Value: 101})
		assert.ErrorIs(t, err, discount.ErrInvalidValue)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := discount.NewCode(discount.Params{Code: "X", Kind: "bogo", Value: 1})
		assert.ErrorIs(t, err, discount.ErrInvalidKind)
	})

	t.Run("unlimited code is never exhausted", func(t *testing.T) {
		code, err := discount.NewCode(discount.Params{Code: "X", Kind: discount.KindFixed, Value: 1, CurrentUses: 1_000_000, MaxUses: nil})
		require.NoError(t, err)
		assert.False(t, code.IsExhausted())

		capped, err := discount.NewCode(discount.Params{Code: "Y", Kind: discount.KindFixed, Value: 1, MaxUses: ptr.Of(int32(0))})
		require.NoError(t, err)
		assert.True(t, capped.IsExhausted())
	})
}
