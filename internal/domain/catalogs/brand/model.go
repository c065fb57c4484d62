// Package brand provides the Brand reference catalog.
// Like categories, brands are read-only reference data here.
package brand

import (
	"stockpilot/internal/core/entity"
)

// Brand identifies a product manufacturer or trademark.
type Brand struct {
	entity.Catalog
}

// NewBrand creates a new Brand.
func NewBrand(brandID, name string) *Brand {
	return &Brand{
		Catalog: entity.NewCatalog(brandID, name),
	}
}
