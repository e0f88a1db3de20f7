package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"salespulse/internal/delivery/http/response"
	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/usecase"

	pgvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for the dashboard read endpoints.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// DashboardQuery represents the dashboard filter query parameters.
type DashboardQuery struct {
	ManagerID *int64  `query:"manager_id" validate:"omitempty,gt=0"`
	Period    *string `query:"period" validate:"omitempty,datetime=2006-01"`
	Category  *string `query:"category"`
}

// GetAnalytics handles the dashboard aggregation request. All three query
// parameters are optional; invalid values are rejected before any query runs.
func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return err
	}

	data, err := h.uc.GetAnalytics(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// GetManagers handles the manager roster request for filter dropdowns.
func (h *AnalyticsHandler) GetManagers(c echo.Context) error {
	managers, err := h.uc.GetManagers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, managers, "")
}

func parseFilters(c echo.Context) (entity.DashboardFilters, error) {
	var query DashboardQuery
	if err := c.Bind(&query); err != nil {
		// manager_id is the only typed parameter, so a bind failure means it
		// did not parse as an integer.
		return entity.DashboardFilters{}, domainerrors.ErrInvalidManagerID.WithDetails(c.QueryParam("manager_id"))
	}

	// An explicitly empty parameter clears the filter.
	if c.QueryParam("manager_id") == "" {
		query.ManagerID = nil
	}
	if query.Period != nil && *query.Period == "" {
		query.Period = nil
	}
	if query.Category != nil && *query.Category == "" {
		query.Category = nil
	}

	if err := c.Validate(&query); err != nil {
		return entity.DashboardFilters{}, invalidFilterError(err)
	}

	return entity.DashboardFilters{
		ManagerID: query.ManagerID,
		Period:    query.Period,
		Category:  query.Category,
	}, nil
}

// invalidFilterError maps per-field validation failures onto the domain
// errors the dashboard clients key off.
func invalidFilterError(err error) error {
	var fieldErrs pgvalidator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			switch fieldErr.Field() {
			case "ManagerID":
				return domainerrors.ErrInvalidManagerID.WithDetails(fmt.Sprintf("%v", fieldErr.Value()))
			case "Period":
				return domainerrors.ErrInvalidPeriod.WithDetails(fmt.Sprintf("%v", fieldErr.Value()))
			}
		}
	}

	return err
}
