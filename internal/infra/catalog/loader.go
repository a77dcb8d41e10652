// Package catalog loads the product catalog and its fulfillment variant map from YAML.
package catalog

import (
	"os"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errs.New("invalid catalog file")

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price int64  `yaml:"price"`
	Image string `yaml:"image"`
	// Variants maps a size to the provider's sync variant id.
	Variants map[string]int64 `yaml:"variants"`
}

// LoadFile reads and validates the catalog at path.
func LoadFile(path string) (*catalog.Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*catalog.Static, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to parse catalog YAML"), ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(f.Products))
	products := make([]catalog.Product, 0, len(f.Products))
	for i, p := range f.Products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, errs.Mark(errs.Newf("product #%d has no id", i), ErrInvalidCatalog)
		}
		if _, dup := seen[id]; dup {
			return nil, errs.Mark(errs.Newf("product %q is listed twice", id), ErrInvalidCatalog)
		}
		if p.Price < 0 {
			return nil, errs.Mark(errs.Newf("product %q has a negative price", id), ErrInvalidCatalog)
		}
		for size, variantID := range p.Variants {
			if variantID <= 0 {
				return nil, errs.Mark(errs.Newf("product %q size %q has no variant id", id, size), ErrInvalidCatalog)
			}
		}
		seen[id] = struct{}{}
		products = append(products, catalog.Product{
			ID:       id,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Variants: p.Variants,
		})
	}
	return catalog.NewStatic(products), nil
}
