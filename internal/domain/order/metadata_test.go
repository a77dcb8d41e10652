//go:build unit

package order_test

import (
	"fmt"
	"strings"
	"testing"

	"storefront/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItems_RoundTrip(t *testing.T) {
	t.Run("small cart fits in one chunk", func(t *testing.T) {
		items := []order.CartItem{
			{ProductID: "classic-tee", Size: "M", Color: "black", Quantity: 2},
			{ProductID: "logo-hoodie", Size: "XL", Color: "heather grey", Quantity: 1},
		}

		md, err := order.EncodeCartItems(items)
		require.NoError(t, err)
		assert.Len(t, md, 1)

		got, err := order.DecodeCartItems(md)
		require.NoError(t, err)
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("separators inside fields survive", func(t *testing.T) {
		items := []order.CartItem{{ProductID: "tee;limited", Size: "S,M", Color: "50% off/red", Quantity: 3}}

		md, err := order.EncodeCartItems(items)
		require.NoError(t, err)

		got, err := order.DecodeCartItems(md)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("large cart is split across size-limited chunks", func(t *testing.T) {
		var items []order.CartItem
		for i := range 60 {
			items = append(items, order.CartItem{
				ProductID: fmt.Sprintf("product-with-a-long-identifier-%02d", i),
				Size:      "XXL",
				Color:     "forest green",
				Quantity:  i%3 + 1,
			})
		}

		md, err := order.EncodeCartItems(items)
		require.NoError(t, err)
		assert.Greater(t, len(md), 1)
		for k, v := range md {
			assert.True(t, strings.HasPrefix(k, order.MetadataItemsPrefix))
			assert.LessOrEqual(t, len(v), order.MaxMetadataValueLength, k)
		}

		got, err := order.DecodeCartItems(md)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("cart beyond chunk budget is rejected", func(t *testing.T) {
		line := order.CartItem{ProductID: strings.Repeat("p", 240), Size: "M", Color: "c", Quantity: 1}
		items := make([]order.CartItem, order.MaxMetadataItemChunks*2+2)
		for i := range items {
			items[i] = line
		}

		_, err := order.EncodeCartItems(items)
		assert.ErrorIs(t, err, order.ErrMetadataTooLarge)
	})

	t.Run("invalid quantity is rejected", func(t *testing.T) {
		_, err := order.EncodeCartItems([]order.CartItem{{ProductID: "tee", Quantity: 0}})
		assert.ErrorIs(t, err, order.ErrInvalidCartItem)
	})
}

func TestDecodeCartItems_Malformed(t *testing.T) {
	tests := []struct {
		name string
		md   map[string]string
		err  error
	}{
		{name: "no items", md: map[string]string{}, err: order.ErrEmptyCartMetadata},
		{name: "missing field", md: map[string]string{"items_0": "tee,M,2"}, err: order.ErrMalformedMetadata},
		{name: "bad quantity", md: map[string]string{"items_0": "tee,M,black,x"}, err: order.ErrMalformedMetadata},
		{name: "zero quantity", md: map[string]string{"items_0": "tee,M,black,0"}, err: order.ErrMalformedMetadata},
		{name: "bad escape", md: map[string]string{"items_0": "tee%zz,M,black,1"}, err: order.ErrMalformedMetadata},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.DecodeCartItems(tt.md)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseCheckoutMetadata(t *testing.T) {
	userID := uuid.New()
	md := map[string]string{
		"items_0":       "classic-tee,M,black,1",
		"user_id":       userID.String(),
		"discount_code": " summer20 ",
		"gift_message":  "Happy birthday!",
	}

	got, err := order.ParseCheckoutMetadata(md)
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)
	assert.Equal(t, "SUMMER20", *got.DiscountCode)
	assert.Equal(t, "Happy birthday!", *got.GiftMessage)
	assert.Len(t, got.Items, 1)

	t.Run("guest checkout has no user", func(t *testing.T) {
		got, err := order.ParseCheckoutMetadata(map[string]string{"items_0": "classic-tee,M,black,1"})
		require.NoError(t, err)
		assert.Nil(t, got.UserID)
		assert.Nil(t, got.DiscountCode)
		assert.Nil(t, got.GiftMessage)
	})

	t.Run("invalid user id is malformed", func(t *testing.T) {
		_, err := order.ParseCheckoutMetadata(map[string]string{"items_0": "classic-tee,M,black,1", "user_id": "nope"})
		assert.ErrorIs(t, err, order.ErrMalformedMetadata)
	})
}
