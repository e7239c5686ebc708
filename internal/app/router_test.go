//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockd/replenishment-service/config"
	"github.com/restockd/replenishment-service/internal/circuitbreaker"
	"github.com/restockd/replenishment-service/internal/store"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		stores   *StoreComponents
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "falls back to the in-memory store without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Replenishment: config.ReplenishmentConfig{
					CentralWarehouse: "M210",
					MaxSessions:      4,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.Equal(t, time.Minute, components.Config.RateWindow)
			},
		},
		{
			name: "uses provided stores and registers the breaker",
			stores: func() *StoreComponents {
				memory := store.NewMemoryStore(4)
				breaker := circuitbreaker.New(circuitbreaker.DefaultConfig())
				return &StoreComponents{
					Datasets: memory,
					Configs:  memory,
					Breaker:  breaker,
				}
			}(),
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit: 50,
				},
				Replenishment: config.ReplenishmentConfig{
					CentralWarehouse: "M210",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.Equal(t, 50, components.Config.RateLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(tt.cfg.Replenishment)

			components := InitializeRouter(services, tt.stores, tt.cfg)

			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
