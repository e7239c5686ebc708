package store

import (
	"context"

	"github.com/restockd/replenishment-service/internal/circuitbreaker"
	"github.com/restockd/replenishment-service/internal/domain/model"
)

// GuardedStore wraps a DatasetStore and DepotConfigStore with circuit breaker
// protection so a struggling MongoDB deployment fails fast instead of piling
// up blocked requests.
type GuardedStore struct {
	datasets DatasetStore
	configs  DepotConfigStore
	breaker  *circuitbreaker.CircuitBreaker
}

// NewGuardedStore wraps the given stores with the circuit breaker.
func NewGuardedStore(datasets DatasetStore, configs DepotConfigStore, cb *circuitbreaker.CircuitBreaker) *GuardedStore {
	return &GuardedStore{
		datasets: datasets,
		configs:  configs,
		breaker:  cb,
	}
}

// Breaker returns the underlying circuit breaker for health reporting.
func (g *GuardedStore) Breaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}

// SaveOrders stores an order dataset with circuit breaker protection.
func (g *GuardedStore) SaveOrders(ctx context.Context, sessionID string, lines []model.OrderLine) error {
	return g.breaker.Execute(ctx, func() error {
		return g.datasets.SaveOrders(ctx, sessionID, lines)
	})
}

// SaveCentralStock stores a stock dataset with circuit breaker protection.
func (g *GuardedStore) SaveCentralStock(ctx context.Context, sessionID string, entries []model.CentralStockEntry) error {
	return g.breaker.Execute(ctx, func() error {
		return g.datasets.SaveCentralStock(ctx, sessionID, entries)
	})
}

// SaveTransit stores a transit dataset with circuit breaker protection.
func (g *GuardedStore) SaveTransit(ctx context.Context, sessionID string, entries []model.TransitEntry) error {
	return g.breaker.Execute(ctx, func() error {
		return g.datasets.SaveTransit(ctx, sessionID, entries)
	})
}

// LatestOrders returns the latest order dataset with circuit breaker protection.
func (g *GuardedStore) LatestOrders(ctx context.Context) ([]model.OrderLine, bool, error) {
	var rows []model.OrderLine
	var ok bool
	err := g.breaker.Execute(ctx, func() error {
		var cbErr error
		rows, ok, cbErr = g.datasets.LatestOrders(ctx)
		return cbErr
	})
	return rows, ok, err
}

// LatestCentralStock returns the latest stock dataset with circuit breaker protection.
func (g *GuardedStore) LatestCentralStock(ctx context.Context) ([]model.CentralStockEntry, bool, error) {
	var rows []model.CentralStockEntry
	var ok bool
	err := g.breaker.Execute(ctx, func() error {
		var cbErr error
		rows, ok, cbErr = g.datasets.LatestCentralStock(ctx)
		return cbErr
	})
	return rows, ok, err
}

// LatestTransit returns the latest transit dataset with circuit breaker protection.
func (g *GuardedStore) LatestTransit(ctx context.Context) ([]model.TransitEntry, bool, error) {
	var rows []model.TransitEntry
	var ok bool
	err := g.breaker.Execute(ctx, func() error {
		var cbErr error
		rows, ok, cbErr = g.datasets.LatestTransit(ctx)
		return cbErr
	})
	return rows, ok, err
}

// Get returns the depot-article configuration with circuit breaker protection.
// When the circuit is open the zero configuration is returned so calculations
// degrade to unfiltered results instead of failing.
func (g *GuardedStore) Get(ctx context.Context) (model.DepotArticleConfig, error) {
	var cfg model.DepotArticleConfig
	err := g.breaker.Execute(ctx, func() error {
		var cbErr error
		cfg, cbErr = g.configs.Get(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return model.DepotArticleConfig{}, nil
	}
	return cfg, err
}

// Set replaces the depot-article configuration with circuit breaker protection.
func (g *GuardedStore) Set(ctx context.Context, cfg model.DepotArticleConfig) error {
	return g.breaker.Execute(ctx, func() error {
		return g.configs.Set(ctx, cfg)
	})
}
