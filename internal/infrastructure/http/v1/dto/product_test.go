package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/internal/core/apperror"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"date only", "2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), false},
		{"garbage", "03/01/2026", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate("dueDate", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestCreateProductRequest_ToEntity(t *testing.T) {
	req := CreateProductRequest{
		Name:          "Sparkling Water",
		Price:         decimal.RequireFromString("2.50"),
		StockQuantity: 10,
		DueDate:       "2026-03-01T23:59:00Z",
		CategoryID:    "cat-1",
	}

	item, err := req.ToEntity()
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID, "id is generated when absent")
	assert.Equal(t, "cat-1", item.CategoryID)
	// Time-of-day is dropped; the stored value is the UTC calendar date.
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), item.DueDate)
}

func TestCreateProductRequest_KeepsClientSuppliedID(t *testing.T) {
	req := CreateProductRequest{
		ID:         "p-77",
		Name:       "Milk",
		DueDate:    "2026-03-01",
		CategoryID: "cat-1",
	}

	item, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "p-77", item.ID)
}

func TestEditProductRequest_InvalidDate(t *testing.T) {
	req := EditProductRequest{
		ID:         "p-1",
		Name:       "Milk",
		DueDate:    "soon",
		CategoryID: "cat-1",
	}

	_, err := req.ToEntity()
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidInput(err))
}
