// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/restockd/replenishment-service/config"
	"github.com/restockd/replenishment-service/internal/http"
	"github.com/restockd/replenishment-service/internal/store"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	stores *StoreComponents,
	cfg config.Config,
) *RouterComponents {
	var datasets store.DatasetStore
	var configs store.DepotConfigStore
	if stores != nil {
		datasets = stores.Datasets
		configs = stores.Configs
	} else {
		memory := store.NewMemoryStore(cfg.Replenishment.MaxSessions)
		datasets = memory
		configs = memory
	}

	handler := http.NewHandler(services.Calculator, services.Advisor, datasets, configs, services.Parser)
	healthHandler := http.NewHealthHandler()

	// Register storage health checks
	if stores != nil {
		if stores.Breaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_datasets", stores.Breaker)
		}
		if stores.Mongo != nil {
			mongo := stores.Mongo
			healthHandler.RegisterChecker("mongodb", http.CheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return mongo.Ping(ctx)
			}))
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
