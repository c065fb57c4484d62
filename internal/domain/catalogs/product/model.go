// Package product provides the Product catalog: the goods tracked by the
// inventory, each referencing a Category and optionally a Brand.
package product

import (
	"context"
	"time"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/entity"
	"stockpilot/internal/core/id"
	"stockpilot/internal/core/types"
)

// Product represents a stocked item.
type Product struct {
	entity.Catalog

	// Price is the unit sale price. Never negative.
	Price types.Money `db:"price" json:"price"`

	// StockQuantity is the on-hand quantity. Never negative.
	StockQuantity int `db:"stock_quantity" json:"stockQuantity"`

	// ImageURL is an optional image location
	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`

	// DueDate is the expiry/restock calendar date. Stored at UTC midnight;
	// no time-of-day semantics attached.
	DueDate time.Time `db:"due_date" json:"dueDate"`

	// CategoryID references an existing Category. Required; the service
	// verifies the target exists before any write.
	CategoryID id.ID `db:"category_id" json:"categoryId"`

	// BrandID optionally references a Brand
	BrandID *string `db:"brand_id" json:"brandId,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(productID, name string, price types.Money, stockQuantity int, dueDate time.Time, categoryID id.ID) *Product {
	return &Product{
		Catalog:       entity.NewCatalog(productID, name),
		Price:         price,
		StockQuantity: stockQuantity,
		DueDate:       NormalizeDate(dueDate),
		CategoryID:    categoryID,
	}
}

// NormalizeDate truncates a timestamp to a calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	// Base catalog validation (name presence)
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Price.IsNegative() {
		return apperror.NewInvalidInput("price cannot be negative", "price")
	}

	if p.StockQuantity < 0 {
		return apperror.NewInvalidInput("stockQuantity cannot be negative", "stockQuantity")
	}

	if p.DueDate.IsZero() {
		return apperror.NewInvalidInput("dueDate is required", "dueDate")
	}

	if id.IsZero(p.CategoryID) {
		return apperror.NewInvalidInput("categoryId is required", "categoryId")
	}

	return nil
}

// StockValue returns price multiplied by on-hand quantity.
func (p *Product) StockValue() types.Money {
	return p.Price.Mul(types.NewMoney(float64(p.StockQuantity)))
}

// HasBrand reports whether an explicit brand reference is set.
func (p *Product) HasBrand() bool {
	return p.BrandID != nil && *p.BrandID != ""
}
