//go:build unit

package catalog_test

import (
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *catalog.Static {
	return catalog.NewStatic([]catalog.Product{
		{ID: "classic-tee", Name: "Classic Tee", Price: 2500, Image: "/img/tee.png", Variants: map[string]int64{"m": 4011, "L": 4012}},
		{ID: "sticker", Name: "Sticker", Price: 300},
	})
}

func TestResolveLineItems(t *testing.T) {
	got := catalog.ResolveLineItems(newCatalog(), []order.CartItem{
		{ProductID: "classic-tee", Size: "M", Color: "black", Quantity: 2},
		{ProductID: "discontinued", Size: "S", Color: "red", Quantity: 1},
	})

	require.Len(t, got, 2)
	assert.Equal(t, order.LineItem{ProductID: "classic-tee", Name: "Classic Tee", Size: "M", Color: "black", Quantity: 2, UnitPrice: 2500, Image: "/img/tee.png"}, got[0])
	assert.Equal(t, "discontinued", got[1].Name)
	assert.Zero(t, got[1].UnitPrice)
}

func TestMapFulfillmentLines(t *testing.T) {
	items := []order.LineItem{
		{ProductID: "classic-tee", Name: "Classic Tee", Size: " m ", Quantity: 2, UnitPrice: 2500},
		{ProductID: "classic-tee", Name: "Classic Tee", Size: "XS", Quantity: 1, UnitPrice: 2500},
		{ProductID: "sticker", Name: "Sticker", Quantity: 5, UnitPrice: 300},
	}

	mapped, dropped := catalog.MapFulfillmentLines(newCatalog(), items)

	assert.Equal(t, []catalog.FulfillmentLine{{VariantID: 4011, Quantity: 2, Name: "Classic Tee", UnitPrice: 2500}}, mapped)
	assert.Len(t, dropped, 2)
}

func TestStatic_VariantID(t *testing.T) {
	c := newCatalog()

	id, ok := c.VariantID("classic-tee", "l")
	assert.True(t, ok)
	assert.Equal(t, int64(4012), id)

	_, ok = c.VariantID("unknown", "M")
	assert.False(t, ok)
}
