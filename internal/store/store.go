// Package store provides the dataset and configuration stores backing the
// replenishment calculator. Implementations keep one "latest" session per
// dataset type: the last completed upload wins, there is no merge across
// sessions.
package store

import (
	"context"

	"github.com/restockd/replenishment-service/internal/domain/model"
)

// DatasetStore persists uploaded datasets keyed by an opaque session id and
// exposes the latest session per dataset type.
type DatasetStore interface {
	SaveOrders(ctx context.Context, sessionID string, lines []model.OrderLine) error
	SaveCentralStock(ctx context.Context, sessionID string, entries []model.CentralStockEntry) error
	SaveTransit(ctx context.Context, sessionID string, entries []model.TransitEntry) error

	// Latest* return the most recently saved dataset of the type and whether
	// one exists at all.
	LatestOrders(ctx context.Context) ([]model.OrderLine, bool, error)
	LatestCentralStock(ctx context.Context) ([]model.CentralStockEntry, bool, error)
	LatestTransit(ctx context.Context) ([]model.TransitEntry, bool, error)
}

// DepotConfigStore holds the process-wide depot-article configuration. Set
// replaces the configuration wholesale; there is no merge.
type DepotConfigStore interface {
	Get(ctx context.Context) (model.DepotArticleConfig, error)
	Set(ctx context.Context, cfg model.DepotArticleConfig) error
}

// BuildSnapshot assembles the immutable dataset view a calculation runs
// against. The calculator receives this snapshot explicitly instead of
// reading shared state.
func BuildSnapshot(ctx context.Context, datasets DatasetStore, configs DepotConfigStore) (model.Snapshot, error) {
	var snap model.Snapshot
	var err error

	snap.Orders, snap.HasOrders, err = datasets.LatestOrders(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.CentralStock, snap.HasCentralStock, err = datasets.LatestCentralStock(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.Transit, snap.HasTransit, err = datasets.LatestTransit(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	if configs != nil {
		snap.DepotConfig, err = configs.Get(ctx)
		if err != nil {
			return model.Snapshot{}, err
		}
	}
	return snap, nil
}
