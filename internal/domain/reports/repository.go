package reports

import (
	"context"
)

// Repository defines the read-side queries behind the dashboard.
type Repository interface {
	// GetDashboardMetrics computes entity counts, stock totals, and the
	// low-stock listing in a single pass.
	GetDashboardMetrics(ctx context.Context, filter DashboardFilter) (*DashboardMetrics, error)
}
