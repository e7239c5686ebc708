//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/restockd/replenishment-service/config"
)

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Replenishment: config.ReplenishmentConfig{
					CentralWarehouse: "M210",
					TruckCapacity:    24,
					MaxSessions:      4,
				},
			},
		},
		{
			name: "creates router with database disabled explicitly",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Replenishment: config.ReplenishmentConfig{
					CentralWarehouse: "M210",
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)

			assert.NotNil(t, router)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
