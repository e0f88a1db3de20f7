package postgres

import (
	"context"

	"salespulse/config"
	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// analyticsRepository implements the read-only aggregate queries behind the
// dashboard with raw SQL. Revenue-bearing aggregates inner-join sales to
// prices on product name, so sales without a priced product never contribute
// to revenue sums.
type analyticsRepository struct {
	db             *gorm.DB
	detailedRowCap int
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB, cfg *config.Config) repository.AnalyticsRepository {
	return &analyticsRepository{
		db:             db,
		detailedRowCap: cfg.Analytics.DetailedRowCap,
	}
}

// salesFilter builds the WHERE fragment shared by the aggregate queries.
// Category is a cache dimension only and never narrows a query.
func salesFilter(filters entity.DashboardFilters, withManager, withPeriod bool) (string, []any) {
	where := " WHERE 1=1"
	args := make([]any, 0, 2)

	if withManager && filters.ManagerID != nil {
		where += " AND s.manager_id = ?"
		args = append(args, *filters.ManagerID)
	}
	if withPeriod && filters.Period != nil {
		where += " AND TO_CHAR(s.date, 'YYYY-MM') = ?"
		args = append(args, *filters.Period)
	}

	return where, args
}

// KPIMetrics returns the headline summary of the filtered set. COALESCE keeps
// every aggregate at zero instead of NULL when no row matches.
func (repo *analyticsRepository) KPIMetrics(ctx context.Context, filters entity.DashboardFilters) (*entity.KPIMetrics, error) {
	where, args := salesFilter(filters, true, true)

	var row struct {
		TotalRevenue   decimal.Decimal `gorm:"column:total_revenue"`
		TotalQuantity  int64           `gorm:"column:total_quantity"`
		AverageCheck   decimal.Decimal `gorm:"column:average_check"`
		ActiveManagers int64           `gorm:"column:active_managers"`
	}

	query := `
		SELECT
			COALESCE(SUM(s.quantity * p.price), 0) AS total_revenue,
			COALESCE(SUM(s.quantity), 0) AS total_quantity,
			COALESCE(ROUND(AVG(s.quantity * p.price), 2), 0) AS average_check,
			COUNT(DISTINCT s.manager_id) AS active_managers
		FROM sales s
		JOIN prices p ON p.product = s.product` + where

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query kpi metrics")
	}

	return &entity.KPIMetrics{
		TotalRevenue:   row.TotalRevenue,
		TotalQuantity:  row.TotalQuantity,
		AverageCheck:   row.AverageCheck,
		ActiveManagers: row.ActiveManagers,
	}, nil
}

// MonthlySales returns revenue and quantity per calendar month, ascending.
// The trend keeps the full date range, so only the manager filter applies.
func (repo *analyticsRepository) MonthlySales(ctx context.Context, filters entity.DashboardFilters) ([]entity.MonthlySales, error) {
	where, args := salesFilter(filters, true, false)

	var rows []entity.MonthlySales
	query := `
		SELECT
			TO_CHAR(s.date, 'YYYY-MM') AS month,
			COALESCE(SUM(s.quantity * p.price), 0) AS revenue,
			COALESCE(SUM(s.quantity), 0) AS quantity
		FROM sales s
		JOIN prices p ON p.product = s.product` + where + `
		GROUP BY TO_CHAR(s.date, 'YYYY-MM')
		ORDER BY month ASC`

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query monthly sales")
	}

	return rows, nil
}

// CategorySales returns revenue per product with each product's share of the
// filtered total. The share is computed in SQL with a window over the grouped
// revenue, so it always sums to 100 for a non-empty set; a set with zero total
// revenue reports zero shares instead of dividing by zero.
func (repo *analyticsRepository) CategorySales(ctx context.Context, filters entity.DashboardFilters) ([]entity.CategorySales, error) {
	where, args := salesFilter(filters, true, true)

	var rows []entity.CategorySales
	query := `
		SELECT
			s.product AS product,
			SUM(s.quantity * p.price) AS revenue,
			COALESCE(ROUND(SUM(s.quantity * p.price) * 100.0 / NULLIF(SUM(SUM(s.quantity * p.price)) OVER (), 0), 2), 0) AS percentage
		FROM sales s
		JOIN prices p ON p.product = s.product` + where + `
		GROUP BY s.product
		ORDER BY revenue DESC, product ASC`

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query category sales")
	}

	return rows, nil
}

// TopManagers ranks managers by revenue within the filtered set, truncated to
// limit. The ranking always spans the whole roster, so only the period filter
// applies.
func (repo *analyticsRepository) TopManagers(ctx context.Context, filters entity.DashboardFilters, limit int) ([]entity.ManagerSales, error) {
	where, args := salesFilter(filters, false, true)
	args = append(args, limit)

	var rows []entity.ManagerSales
	query := `
		SELECT
			m.name AS manager_name,
			SUM(s.quantity * p.price) AS revenue,
			COUNT(DISTINCT s.order_id) AS orders_count
		FROM sales s
		JOIN prices p ON p.product = s.product
		JOIN managers m ON m.id = s.manager_id` + where + `
		GROUP BY m.name
		ORDER BY revenue DESC, manager_name ASC
		LIMIT ?`

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query top managers")
	}

	return rows, nil
}

// DetailedSales returns individual sale lines joined to manager name and
// price, most recent first. The row cap is a fixed display-safety ceiling.
func (repo *analyticsRepository) DetailedSales(ctx context.Context, filters entity.DashboardFilters) ([]entity.DetailedSaleRow, error) {
	where, args := salesFilter(filters, true, true)
	args = append(args, repo.detailedRowCap)

	var rows []entity.DetailedSaleRow
	query := `
		SELECT
			TO_CHAR(s.date, 'DD.MM.YYYY') AS date,
			m.name AS manager_name,
			s.product AS product,
			s.quantity AS quantity,
			s.quantity * p.price AS total
		FROM sales s
		JOIN prices p ON p.product = s.product
		JOIN managers m ON m.id = s.manager_id` + where + `
		ORDER BY s.date DESC, s.id DESC
		LIMIT ?`

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query detailed sales")
	}

	return rows, nil
}
