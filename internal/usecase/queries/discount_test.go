//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/discount"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/queries"
	queriesmock "storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountQueries_Validate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	maxUses := int32(10)

	activeView := func() *queries.DiscountCodeView {
		return &queries.DiscountCodeView{
			ID:          uuid.New(),
			Code:        "SUMMER20",
			Kind:        "percentage",
			Value:       20,
			MaxUses:     &maxUses,
			CurrentUses: 2,
			IsActive:    true,
			Description: "Summer",
		}
	}

	t.Run("valid percentage code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDiscountReadStore(ctrl)
		store.EXPECT().FindByCode(ctx, "SUMMER20").Return(activeView(), nil)

		got, err := queries.NewDiscountQueries(store, clock.NewFixedClock(now)).Validate(ctx, " summer20", 10000, false)
		require.NoError(t, err)
		assert.True(t, got.Valid)
		assert.Equal(t, int64(2000), got.DiscountAmount)
		assert.Equal(t, "SUMMER20", got.Code)
		assert.Equal(t, "percentage", got.Kind)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDiscountReadStore(ctrl)
		store.EXPECT().FindByCode(ctx, "NOPE").Return(nil, infra.WrapRepoErr("discount code not found", nil, infra.KindNotFound))

		got, err := queries.NewDiscountQueries(store, clock.NewFixedClock(now)).Validate(ctx, "nope", 10000, true)
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, discount.MessageInvalid, got.Message)
	})

	t.Run("blank code never hits the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDiscountReadStore(ctrl)

		got, err := queries.NewDiscountQueries(store, clock.NewFixedClock(now)).Validate(ctx, "   ", 10000, true)
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})

	t.Run("exhausted code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDiscountReadStore(ctrl)
		v := activeView()
		v.CurrentUses = maxUses
		store.EXPECT().FindByCode(ctx, "SUMMER20").Return(v, nil)

		got, err := queries.NewDiscountQueries(store, clock.NewFixedClock(now)).Validate(ctx, "SUMMER20", 10000, true)
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, discount.MessageExhausted, got.Message)
		assert.Equal(t, string(discount.ReasonExhausted), got.Reason)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDiscountReadStore(ctrl)
		boom := errors.New("boom")
		store.EXPECT().FindByCode(ctx, "SUMMER20").Return(nil, boom)

		_, err := queries.NewDiscountQueries(store, clock.NewFixedClock(now)).Validate(ctx, "SUMMER20", 10000, true)
		assert.ErrorIs(t, err, boom)
	})
}
