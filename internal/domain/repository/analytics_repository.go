package repository

import (
	"context"

	"salespulse/internal/domain/entity"
)

// AnalyticsRepository defines the five read-only aggregate queries behind the
// dashboard. Every revenue-bearing aggregate inner-joins sales to prices, so
// sales without a priced product contribute nothing to revenue sums.
type AnalyticsRepository interface {
	// KPIMetrics returns the headline summary of the filtered set. An empty
	// filtered set yields the zero-value metrics, not an error.
	KPIMetrics(ctx context.Context, filters entity.DashboardFilters) (*entity.KPIMetrics, error)

	// MonthlySales returns revenue and quantity per calendar month, ascending.
	MonthlySales(ctx context.Context, filters entity.DashboardFilters) ([]entity.MonthlySales, error)

	// CategorySales returns revenue per product with each product's share of
	// the filtered total, descending by revenue.
	CategorySales(ctx context.Context, filters entity.DashboardFilters) ([]entity.CategorySales, error)

	// TopManagers ranks managers by revenue within the filtered set,
	// truncated to limit.
	TopManagers(ctx context.Context, filters entity.DashboardFilters, limit int) ([]entity.ManagerSales, error)

	// DetailedSales returns individual sale lines joined to manager name and
	// price, most recent first, capped at the display-safety limit.
	DetailedSales(ctx context.Context, filters entity.DashboardFilters) ([]entity.DetailedSaleRow, error)
}
