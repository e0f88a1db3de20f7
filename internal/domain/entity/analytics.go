package entity

import "github.com/shopspring/decimal"

// DashboardFilters parameterizes every analytics query and every cache key.
// Nil fields mean "no filter".
type DashboardFilters struct {
	ManagerID *int64  `json:"manager_id,omitempty"`
	Period    *string `json:"period,omitempty"` // "YYYY-MM"
	Category  *string `json:"category,omitempty"`
}

// KPIMetrics is the headline summary of the filtered sales set. Revenue and
// average check only count sales whose product has a known price.
type KPIMetrics struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalQuantity  int64           `json:"total_quantity"`
	AverageCheck   decimal.Decimal `json:"average_check"`
	ActiveManagers int64           `json:"active_managers"`
}

// MonthlySales is one calendar month of revenue and quantity.
type MonthlySales struct {
	Month    string          `json:"month"` // "YYYY-MM"
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int64           `json:"quantity"`
}

// CategorySales is the revenue of one product and its share of the total
// revenue over the filtered set.
type CategorySales struct {
	Product    string          `json:"product"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ManagerSales ranks one manager by revenue within the filtered set.
type ManagerSales struct {
	ManagerName string          `json:"manager_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	OrdersCount int64           `json:"orders_count"`
}

// DetailedSaleRow is one sale line joined to its manager and price.
type DetailedSaleRow struct {
	Date        string          `json:"date"` // "dd.mm.yyyy"
	ManagerName string          `json:"manager_name"`
	Product     string          `json:"product"`
	Quantity    int64           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// AnalyticsData bundles the five aggregate views computed for one filter set.
type AnalyticsData struct {
	KPI           KPIMetrics        `json:"kpi"`
	MonthlySales  []MonthlySales    `json:"monthly_sales"`
	CategorySales []CategorySales   `json:"category_sales"`
	TopManagers   []ManagerSales    `json:"top_managers"`
	DetailedSales []DetailedSaleRow `json:"detailed_sales"`
}
