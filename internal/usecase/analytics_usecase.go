package usecase

import (
	"context"

	"salespulse/internal/domain/entity"
)

// AnalyticsUsecase defines the interface for the dashboard read side.
type AnalyticsUsecase interface {
	// GetAnalytics returns the five aggregate views for the filter set,
	// serving from cache when a fresh entry exists.
	GetAnalytics(ctx context.Context, filters entity.DashboardFilters) (*entity.AnalyticsData, error)

	// GetManagers returns the manager roster for filter dropdowns, serving
	// from cache when a fresh entry exists.
	GetManagers(ctx context.Context) ([]*entity.Manager, error)
}
