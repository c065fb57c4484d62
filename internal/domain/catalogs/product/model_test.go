package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/types"
)

func validProduct() *Product {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return NewProduct("", "Sparkling Water", types.MustMoney("2.50"), 10, due, "cat-1")
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	in := time.Date(2026, 3, 1, 22, 45, 12, 0, loc)

	got := NormalizeDate(in)

	// 22:45 UTC-3 is already March 2nd in UTC.
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, got)
}

func TestProductValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(p *Product)
		wantField string
	}{
		{"valid", func(p *Product) {}, ""},
		{"missing name", func(p *Product) { p.Name = "" }, "name"},
		{"negative price", func(p *Product) { p.Price = types.MustMoney("-1") }, "price"},
		{"zero price ok", func(p *Product) { p.Price = types.Zero() }, ""},
		{"negative stock", func(p *Product) { p.StockQuantity = -3 }, "stockQuantity"},
		{"zero stock ok", func(p *Product) { p.StockQuantity = 0 }, ""},
		{"missing due date", func(p *Product) { p.DueDate = time.Time{} }, "dueDate"},
		{"missing category", func(p *Product) { p.CategoryID = "" }, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)

			err := p.Validate(ctx)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := apperror.AsAppError(err)
			if assert.True(t, ok, "expected AppError, got %v", err) {
				assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
				assert.Equal(t, tt.wantField, appErr.Details["field"])
			}
		})
	}
}

func TestStockValue(t *testing.T) {
	p := validProduct()
	p.Price = types.MustMoney("2.50")
	p.StockQuantity = 4

	assert.True(t, p.StockValue().Equal(types.MustMoney("10.00")))
}

func TestHasBrand(t *testing.T) {
	p := validProduct()
	assert.False(t, p.HasBrand())

	empty := ""
	p.BrandID = &empty
	assert.False(t, p.HasBrand())

	brandID := "b-1"
	p.BrandID = &brandID
	assert.True(t, p.HasBrand())
}
