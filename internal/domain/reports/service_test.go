package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/internal/core/types"
)

type fakeDashboardRepo struct {
	gotFilter DashboardFilter
}

func (r *fakeDashboardRepo) GetDashboardMetrics(ctx context.Context, filter DashboardFilter) (*DashboardMetrics, error) {
	r.gotFilter = filter
	return &DashboardMetrics{
		ProductCount:    3,
		TotalStockValue: types.MustMoney("42.00"),
	}, nil
}

func TestGetDashboard_DefaultLowStockLimit(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewService(repo)

	_, err := svc.GetDashboard(context.Background(), DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotFilter.LowStockLimit)
}

func TestGetDashboard_ClampsLowStockLimit(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewService(repo)

	_, err := svc.GetDashboard(context.Background(), DashboardFilter{LowStockLimit: 500})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.gotFilter.LowStockLimit)

	_, err = svc.GetDashboard(context.Background(), DashboardFilter{LowStockLimit: -1})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotFilter.LowStockLimit)
}

func TestGetDashboard_PassesThroughMetrics(t *testing.T) {
	svc := NewService(&fakeDashboardRepo{})

	metrics, err := svc.GetDashboard(context.Background(), DashboardFilter{LowStockLimit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.ProductCount)
	assert.True(t, metrics.TotalStockValue.Equal(types.MustMoney("42.00")))
}
