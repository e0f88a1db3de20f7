package postgres

import (
	"context"
	"testing"

	"salespulse/config"
	"salespulse/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func newAnalyticsRepo(t *testing.T) (*analyticsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	cfg := &config.Config{}
	cfg.Analytics = &config.AnalyticsConfig{DetailedRowCap: 100}

	repo, ok := NewAnalyticsRepository(db, cfg).(*analyticsRepository)
	require.True(t, ok)

	return repo, mock
}

func TestKPIMetrics(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		repo, mock := newAnalyticsRepo(t)

		mock.ExpectQuery(`(?s)SELECT.*total_revenue.*FROM sales s.*JOIN prices p`).
			WillReturnRows(sqlmock.NewRows([]string{"total_revenue", "total_quantity", "average_check", "active_managers"}).
				AddRow("1500.00", 30, "50.00", 2))

		got, err := repo.KPIMetrics(context.Background(), entity.DashboardFilters{})
		require.NoError(t, err)
		assert.Equal(t, "1500", got.TotalRevenue.String())
		assert.Equal(t, int64(30), got.TotalQuantity)
		assert.Equal(t, "50", got.AverageCheck.String())
		assert.Equal(t, int64(2), got.ActiveManagers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("manager and period filters bind as arguments", func(t *testing.T) {
		repo, mock := newAnalyticsRepo(t)

		managerID := int64(7)
		period := "2024-03"
		mock.ExpectQuery(`(?s)SELECT.*FROM sales s.*WHERE 1=1 AND s\.manager_id = \$1 AND TO_CHAR\(s\.date, 'YYYY-MM'\) = \$2`).
			WithArgs(managerID, period).
			WillReturnRows(sqlmock.NewRows([]string{"total_revenue", "total_quantity", "average_check", "active_managers"}).
				AddRow("0", 0, "0", 0))

		got, err := repo.KPIMetrics(context.Background(), entity.DashboardFilters{ManagerID: &managerID, Period: &period})
		require.NoError(t, err)
		assert.True(t, got.TotalRevenue.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMonthlySalesIgnoresPeriodFilter(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	// The trend keeps the full date range even when a period is selected.
	period := "2024-03"
	mock.ExpectQuery(`(?s)SELECT.*TO_CHAR\(s\.date, 'YYYY-MM'\) AS month.*WHERE 1=1\s+GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue", "quantity"}).
			AddRow("2024-02", "200.00", 4).
			AddRow("2024-03", "300.00", 6))

	got, err := repo.MonthlySales(context.Background(), entity.DashboardFilters{Period: &period})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02", got[0].Month)
	assert.Equal(t, "300", got[1].Revenue.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySales(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	mock.ExpectQuery(`(?s)SELECT.*NULLIF\(SUM\(SUM\(s\.quantity \* p\.price\)\) OVER \(\), 0\).*GROUP BY s\.product.*ORDER BY revenue DESC, product ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"product", "revenue", "percentage"}).
			AddRow("Widget", "750.00", "75.00").
			AddRow("Gadget", "250.00", "25.00"))

	got, err := repo.CategorySales(context.Background(), entity.DashboardFilters{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Widget", got[0].Product)
	assert.Equal(t, "75", got[0].Percentage.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySalesZeroRevenueSet(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	// All quantities zero: the divisor window is zero and every share comes
	// back as the COALESCE fallback instead of a division error.
	mock.ExpectQuery(`(?s)SELECT.*COALESCE\(ROUND\(.*NULLIF\(SUM\(SUM\(s\.quantity \* p\.price\)\) OVER \(\), 0\), 2\), 0\) AS percentage.*GROUP BY s\.product`).
		WillReturnRows(sqlmock.NewRows([]string{"product", "revenue", "percentage"}).
			AddRow("Widget", "0", "0"))

	got, err := repo.CategorySales(context.Background(), entity.DashboardFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Revenue.IsZero())
	assert.True(t, got[0].Percentage.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopManagersIgnoresManagerFilter(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	// The ranking spans the whole roster; only the period narrows it.
	managerID := int64(7)
	period := "2024-03"
	mock.ExpectQuery(`(?s)SELECT.*JOIN managers m.*WHERE 1=1 AND TO_CHAR\(s\.date, 'YYYY-MM'\) = \$1.*LIMIT \$2`).
		WithArgs(period, 3).
		WillReturnRows(sqlmock.NewRows([]string{"manager_name", "revenue", "orders_count"}).
			AddRow("Ivanov I.", "900.00", 5))

	got, err := repo.TopManagers(context.Background(), entity.DashboardFilters{ManagerID: &managerID, Period: &period}, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ivanov I.", got[0].ManagerName)
	assert.Equal(t, int64(5), got[0].OrdersCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailedSalesAppliesRowCap(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	mock.ExpectQuery(`(?s)SELECT.*TO_CHAR\(s\.date, 'DD\.MM\.YYYY'\) AS date.*ORDER BY s\.date DESC, s\.id DESC.*LIMIT \$1`).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"date", "manager_name", "product", "quantity", "total"}).
			AddRow("15.03.2024", "Ivanov I.", "Widget", 3, "150.00"))

	got, err := repo.DetailedSales(context.Background(), entity.DashboardFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "15.03.2024", got[0].Date)
	assert.Equal(t, "150", got[0].Total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKPIMetricsQueryError(t *testing.T) {
	repo, mock := newAnalyticsRepo(t)

	mock.ExpectQuery(`(?s)SELECT.*FROM sales s`).WillReturnError(assert.AnError)

	_, err := repo.KPIMetrics(context.Background(), entity.DashboardFilters{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
