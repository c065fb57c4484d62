package reports

import (
	"context"
	"fmt"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetDashboard generates the dashboard summary.
func (s *Service) GetDashboard(ctx context.Context, filter DashboardFilter) (*DashboardMetrics, error) {
	if filter.LowStockLimit <= 0 {
		filter.LowStockLimit = 5
	}
	if filter.LowStockLimit > 50 {
		filter.LowStockLimit = 50
	}

	metrics, err := s.repo.GetDashboardMetrics(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get dashboard metrics: %w", err)
	}

	return metrics, nil
}
