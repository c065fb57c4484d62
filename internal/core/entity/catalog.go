package entity

import (
	"context"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/id"
)

// Catalog is the base type for reference and master data.
// Examples: Product, Client, Category, Brand.
type Catalog struct {
	// ID is the primary key. Opaque string, immutable after creation.
	ID id.ID `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog, generating an ID when none is given.
func NewCatalog(entityID, name string) Catalog {
	return Catalog{
		ID:   id.OrNew(entityID),
		Name: name,
	}
}

// EntityID implements Identifiable.
func (c *Catalog) EntityID() id.ID {
	return c.ID
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewInvalidInput("name is required", "name")
	}
	return nil
}
