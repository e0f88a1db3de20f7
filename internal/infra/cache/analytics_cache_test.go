package cache

import (
	"testing"

	"salespulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticsKey(t *testing.T) {
	managerID := int64(7)
	period := "2024-03"
	category := "Widget"

	tests := []struct {
		name     string
		filters  entity.DashboardFilters
		expected string
	}{
		{
			name:     "no filters",
			filters:  entity.DashboardFilters{},
			expected: "analytics",
		},
		{
			name:     "manager only",
			filters:  entity.DashboardFilters{ManagerID: &managerID},
			expected: "analytics:mgr:7",
		},
		{
			name:     "period only",
			filters:  entity.DashboardFilters{Period: &period},
			expected: "analytics:per:2024-03",
		},
		{
			name:     "category only",
			filters:  entity.DashboardFilters{Category: &category},
			expected: "analytics:cat:Widget",
		},
		{
			name: "all filters keep fixed segment order",
			filters: entity.DashboardFilters{
				ManagerID: &managerID,
				Period:    &period,
				Category:  &category,
			},
			expected: "analytics:mgr:7:per:2024-03:cat:Widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyticsKey(tt.filters))
		})
	}
}
