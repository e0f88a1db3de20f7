package impl

import (
	"context"
	"log/slog"
	"time"

	"salespulse/config"
	"salespulse/internal/domain/entity"
	"salespulse/internal/domain/repository"
	"salespulse/internal/domain/service"
	"salespulse/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	managerRepo   repository.ManagerRepository
	cache         service.AnalyticsCache
	logger        *slog.Logger

	topManagersLimit int
	queryTimeout     time.Duration
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	managerRepo repository.ManagerRepository,
	cache service.AnalyticsCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo:    analyticsRepo,
		managerRepo:      managerRepo,
		cache:            cache,
		logger:           logger,
		topManagersLimit: cfg.Analytics.TopManagersLimit,
		queryTimeout:     cfg.Analytics.QueryTimeout,
	}
}

// GetAnalytics returns the five aggregate views for the filter set. A fresh
// cache entry short-circuits the store entirely; otherwise the five queries
// run concurrently under one deadline and the result is cached best-effort.
func (s *analyticsService) GetAnalytics(ctx context.Context, filters entity.DashboardFilters) (*entity.AnalyticsData, error) {
	if cached, err := s.cache.GetAnalytics(ctx, filters); err != nil {
		s.logger.WarnContext(ctx, "analytics cache read failed",
			slog.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	data := new(entity.AnalyticsData)
	group, groupCtx := errgroup.WithContext(queryCtx)

	group.Go(func() error {
		kpi, err := s.analyticsRepo.KPIMetrics(groupCtx, filters)
		if err != nil {
			return err
		}
		data.KPI = *kpi

		return nil
	})
	group.Go(func() error {
		var err error
		data.MonthlySales, err = s.analyticsRepo.MonthlySales(groupCtx, filters)

		return err
	})
	group.Go(func() error {
		var err error
		data.CategorySales, err = s.analyticsRepo.CategorySales(groupCtx, filters)

		return err
	})
	group.Go(func() error {
		var err error
		data.TopManagers, err = s.analyticsRepo.TopManagers(groupCtx, filters, s.topManagersLimit)

		return err
	})
	group.Go(func() error {
		var err error
		data.DetailedSales, err = s.analyticsRepo.DetailedSales(groupCtx, filters)

		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.SetAnalytics(ctx, filters, data); err != nil {
		s.logger.WarnContext(ctx, "analytics cache write failed",
			slog.String("error", err.Error()))
	}

	return data, nil
}

// GetManagers returns the manager roster ordered by name, serving from cache
// when a fresh entry exists.
func (s *analyticsService) GetManagers(ctx context.Context) ([]*entity.Manager, error) {
	if cached, err := s.cache.GetManagers(ctx); err != nil {
		s.logger.WarnContext(ctx, "managers cache read failed",
			slog.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	managers, err := s.managerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetManagers(ctx, managers); err != nil {
		s.logger.WarnContext(ctx, "managers cache write failed",
			slog.String("error", err.Error()))
	}

	return managers, nil
}
