package catalog

import (
	"log/slog"
	"strings"

	"storefront/internal/domain/order"
)

// Product is a sellable item as the storefront presents it.
type Product struct {
	ID       string
	Name     string
	Price    int64
	Image    string
	Variants map[string]int64
}

// Service resolves catalog data. Implementations are read-only and safe for concurrent use.
type Service interface {
	Product(id string) (Product, bool)
	// VariantID returns the fulfillment provider's sync variant for a product size.
	VariantID(productID, size string) (int64, bool)
}

// FulfillmentLine is a line item mapped onto the provider's catalog.
type FulfillmentLine struct {
	VariantID int64
	Quantity  int
	Name      string
	UnitPrice int64
}

// ResolveLineItems snapshots cart items against the catalog. Unknown products are kept with the
// product id as name and a zero price so the paid order is never lost.
func ResolveLineItems(svc Service, items []order.CartItem) []order.LineItem {
	out := make([]order.LineItem, 0, len(items))
	for _, it := range items {
		li := order.LineItem{
			ProductID: it.ProductID,
			Name:      it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		}
		if p, ok := svc.Product(it.ProductID); ok {
			li.Name = p.Name
			li.UnitPrice = p.Price
			li.Image = p.Image
		} else {
			slog.Warn("product not found in catalog", "product_id", it.ProductID)
		}
		out = append(out, li)
	}
	return out
}

// MapFulfillmentLines splits line items into those the provider can fulfill and those it cannot.
func MapFulfillmentLines(svc Service, items []order.LineItem) (mapped []FulfillmentLine, dropped []order.LineItem) {
	for _, li := range items {
		variantID, ok := svc.VariantID(li.ProductID, li.Size)
		if !ok {
			dropped = append(dropped, li)
			continue
		}
		mapped = append(mapped, FulfillmentLine{
			VariantID: variantID,
			Quantity:  li.Quantity,
			Name:      li.Name,
			UnitPrice: li.UnitPrice,
		})
	}
	return mapped, dropped
}

// VariantKey is the canonical lookup key for size variants.
func VariantKey(size string) string {
	return strings.ToUpper(strings.TrimSpace(size))
}

// Static is an in-memory Service.
type Static struct {
	products map[string]Product
}

func NewStatic(products []Product) *Static {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		variants := make(map[string]int64, len(p.Variants))
		for size, id := range p.Variants {
			variants[VariantKey(size)] = id
		}
		p.Variants = variants
		m[p.ID] = p
	}
	return &Static{products: m}
}

func (s *Static) Product(id string) (Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func (s *Static) VariantID(productID, size string) (int64, bool) {
	p, ok := s.products[productID]
	if !ok {
		return 0, false
	}
	id, ok := p.Variants[VariantKey(size)]
	return id, ok
}
