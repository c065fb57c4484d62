// Package category provides the Category reference catalog.
// Categories classify products and are managed outside this service;
// here they are read-only reference data.
package category

import (
	"stockpilot/internal/core/entity"
)

// Category classifies products.
type Category struct {
	entity.Catalog
}

// NewCategory creates a new Category.
func NewCategory(categoryID, name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(categoryID, name),
	}
}
