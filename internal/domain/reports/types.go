// Package reports provides aggregated read models for the dashboard.
package reports

import (
	"stockpilot/internal/core/types"
)

// DashboardMetrics is the summary consumed by the dashboard page.
type DashboardMetrics struct {
	ProductCount    int64       `json:"productCount"`
	ClientCount     int64       `json:"clientCount"`
	CategoryCount   int64       `json:"categoryCount"`
	BrandCount      int64       `json:"brandCount"`
	TotalStockUnits int64       `json:"totalStockUnits"`
	TotalStockValue types.Money `json:"totalStockValue"`

	// LowStock lists the products with the smallest on-hand quantity.
	LowStock []LowStockProduct `json:"lowStock"`
}

// LowStockProduct is one row of the low-stock listing.
type LowStockProduct struct {
	ProductID     string      `db:"id" json:"productId"`
	Name          string      `db:"name" json:"name"`
	StockQuantity int         `db:"stock_quantity" json:"stockQuantity"`
	Price         types.Money `db:"price" json:"price"`
}

// DashboardFilter bounds the dashboard queries.
type DashboardFilter struct {
	// LowStockLimit caps the low-stock listing (default 5, max 50).
	LowStockLimit int
}
