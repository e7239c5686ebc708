//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockd/replenishment-service/config"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ReplenishmentConfig
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services with default config",
			cfg: config.ReplenishmentConfig{
				CentralWarehouse: "M210",
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Calculator)
				assert.NotNil(t, components.Advisor)
				assert.NotNil(t, components.Parser)
			},
		},
		{
			name: "custom local articles override the shipped set",
			cfg: config.ReplenishmentConfig{
				CentralWarehouse: "M210",
				LocalArticles:    []string{"X1", "X2"},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.True(t, components.RefData.LocalArticles.Contains("X1"))
				assert.False(t, components.RefData.LocalArticles.Contains("10105"))
			},
		},
		{
			name: "custom depot range",
			cfg: config.ReplenishmentConfig{
				CentralWarehouse: "M210",
				DepotPrefix:      "D",
				DepotRangeLow:    1,
				DepotRangeHigh:   50,
				ExtraDepots:      []string{"D99"},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.True(t, components.RefData.Depots.Allows("D10"))
				assert.True(t, components.RefData.Depots.Allows("D99"))
				assert.False(t, components.RefData.Depots.Allows("D51"))
				assert.False(t, components.RefData.Depots.Allows("M105"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg)

			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
