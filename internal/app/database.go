// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/restockd/replenishment-service/config"
	"github.com/restockd/replenishment-service/internal/circuitbreaker"
	"github.com/restockd/replenishment-service/internal/store"
)

// StoreComponents holds storage-related components.
type StoreComponents struct {
	Datasets store.DatasetStore
	Configs  store.DepotConfigStore
	Breaker  *circuitbreaker.CircuitBreaker
	Mongo    *store.Mongo
}

// InitializeDatabase initializes the MongoDB-backed stores.
// Returns nil if the database is disabled or the connection fails; the caller
// falls back to the in-memory store.
func InitializeDatabase(cfg config.DatabaseConfig) *StoreComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := store.NewMongo(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory store")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to create dataset indexes (may already exist)")
	}

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-datasets",
	})

	mongoStore := store.NewMongoStore(db)
	guarded := store.NewGuardedStore(mongoStore, mongoStore, breaker)

	return &StoreComponents{
		Datasets: guarded,
		Configs:  guarded,
		Breaker:  breaker,
		Mongo:    db,
	}
}
