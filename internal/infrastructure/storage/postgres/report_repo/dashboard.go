// Package report_repo provides PostgreSQL read models for reporting.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockpilot/internal/core/types"
	"stockpilot/internal/domain/reports"
	"stockpilot/internal/infrastructure/storage/postgres"
)

// DashboardRepo implements reports.Repository for PostgreSQL.
type DashboardRepo struct {
	txm *postgres.TxManager
}

var _ reports.Repository = (*DashboardRepo)(nil)

// NewDashboardRepo creates a new dashboard repository.
func NewDashboardRepo(txm *postgres.TxManager) *DashboardRepo {
	return &DashboardRepo{txm: txm}
}

func (r *DashboardRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// GetDashboardMetrics computes counts, stock totals, and the low-stock
// listing. Runs as plain pool queries unless a transaction is active in
// ctx.
func (r *DashboardRepo) GetDashboardMetrics(ctx context.Context, filter reports.DashboardFilter) (*reports.DashboardMetrics, error) {
	metrics := &reports.DashboardMetrics{
		TotalStockValue: types.Zero(),
		LowStock:        []reports.LowStockProduct{},
	}

	querier := r.txm.GetQuerier(ctx)

	// Counts and stock totals in a single scan over products, plus
	// subquery counts for the other catalogs.
	const summarySQL = `
		SELECT
			COUNT(p.id)                                   AS product_count,
			COALESCE(SUM(p.stock_quantity), 0)            AS total_stock_units,
			COALESCE(SUM(p.price * p.stock_quantity), 0)  AS total_stock_value,
			(SELECT COUNT(*) FROM clients)                AS client_count,
			(SELECT COUNT(*) FROM categories)             AS category_count,
			(SELECT COUNT(*) FROM brands)                 AS brand_count
		FROM products p`

	row := querier.QueryRow(ctx, summarySQL)
	if err := row.Scan(
		&metrics.ProductCount,
		&metrics.TotalStockUnits,
		&metrics.TotalStockValue,
		&metrics.ClientCount,
		&metrics.CategoryCount,
		&metrics.BrandCount,
	); err != nil {
		return nil, postgres.TranslateError(err, "dashboard")
	}

	q := r.builder().
		Select("id", "name", "stock_quantity", "price").
		From("products").
		OrderBy("stock_quantity ASC", "name ASC").
		Limit(uint64(filter.LowStockLimit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build low-stock query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &metrics.LowStock, sql, args...); err != nil {
		return nil, postgres.TranslateError(err, "dashboard")
	}

	return metrics, nil
}
