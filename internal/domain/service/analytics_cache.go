// Package service defines interfaces for infrastructure services consumed by
// the use case layer.
package service

import (
	"context"

	"salespulse/internal/domain/entity"
)

// AnalyticsCache memoizes aggregated dashboard data per distinct filter
// combination, plus the manager roster. Entries are derived data with a
// time-to-live; they are never a source of truth. Implementations return
// errors so callers can log them, but every cache error must be treated as a
// miss: the cache is a pure performance optimization and always fails open.
type AnalyticsCache interface {
	// GetAnalytics returns the cached dashboard for the filter set, or nil
	// on a miss.
	GetAnalytics(ctx context.Context, filters entity.DashboardFilters) (*entity.AnalyticsData, error)

	// SetAnalytics stores the dashboard for the filter set with the
	// analytics TTL.
	SetAnalytics(ctx context.Context, filters entity.DashboardFilters, data *entity.AnalyticsData) error

	// GetManagers returns the cached roster, or nil on a miss.
	GetManagers(ctx context.Context) ([]*entity.Manager, error)

	// SetManagers stores the roster with the roster TTL.
	SetManagers(ctx context.Context, managers []*entity.Manager) error

	// InvalidateAll evicts every analytics entry and the cached roster so
	// future reads recompute against the store.
	InvalidateAll(ctx context.Context) error
}
