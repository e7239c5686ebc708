package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockd/replenishment-service/internal/domain/model"
)

func TestMemoryStore_LatestPerType(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	_, ok, err := s.LatestOrders(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	first := []model.OrderLine{{Article: "A1", Depot: "D1", Packaging: "verre", OrderedQuantity: 1, UnitsPerPallet: 30}}
	second := []model.OrderLine{{Article: "A2", Depot: "D2", Packaging: "pet", OrderedQuantity: 2, UnitsPerPallet: 24}}

	require.NoError(t, s.SaveOrders(ctx, "s1", first))
	require.NoError(t, s.SaveOrders(ctx, "s2", second))

	rows, ok, err := s.LatestOrders(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, rows)

	// Other dataset types stay independent.
	_, ok, err = s.LatestCentralStock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveCentralStock(ctx, "s3", []model.CentralStockEntry{{Article: "A1", AvailableQuantity: 10}}))
	stock, ok, err := s.LatestCentralStock(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, stock, 1)
}

func TestMemoryStore_EmptyUploadIsStillLatest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	require.NoError(t, s.SaveTransit(ctx, "s1", []model.TransitEntry{{Article: "A1", DestinationDepot: "D1", Quantity: 5}}))
	require.NoError(t, s.SaveTransit(ctx, "s2", []model.TransitEntry{}))

	rows, ok, err := s.LatestTransit(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rows)
}

func TestMemoryStore_EvictsOldestSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(3)

	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("s%d", i)
		require.NoError(t, s.SaveOrders(ctx, id, []model.OrderLine{{Article: id, Depot: "D1", Packaging: "verre", OrderedQuantity: 1, UnitsPerPallet: 30}}))
	}

	s.orders.mu.RLock()
	retained := len(s.orders.sessions)
	s.orders.mu.RUnlock()
	assert.Equal(t, 3, retained)

	// The latest session always survives eviction.
	rows, ok, err := s.LatestOrders(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "s9", rows[0].Article)
}

func TestMemoryStore_DepotConfigReplace(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	cfg, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Mapping)

	require.NoError(t, s.Set(ctx, model.DepotArticleConfig{
		Enabled: true,
		Mapping: map[string][]string{"D1": {"A1", "A2"}},
	}))

	// Full replace, no merge.
	require.NoError(t, s.Set(ctx, model.DepotArticleConfig{
		Enabled: true,
		Mapping: map[string][]string{"D2": {"A3"}},
	}))

	cfg, err = s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Len(t, cfg.Mapping, 1)
	assert.Equal(t, []string{"A3"}, cfg.Mapping["D2"])
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(8)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			_ = s.SaveOrders(ctx, id, []model.OrderLine{{Article: id, Depot: "D1", Packaging: "verre", OrderedQuantity: 1, UnitsPerPallet: 30}})
		}(i)
	}
	wg.Wait()

	// Some completed write won; the store must stay consistent.
	rows, ok, err := s.LatestOrders(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 1)
}

func TestBuildSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	snap, err := BuildSnapshot(ctx, s, s)
	require.NoError(t, err)
	assert.False(t, snap.HasOrders)
	assert.False(t, snap.HasCentralStock)
	assert.False(t, snap.HasTransit)

	require.NoError(t, s.SaveOrders(ctx, "s1", []model.OrderLine{{Article: "A1", Depot: "D1", Packaging: "verre", OrderedQuantity: 1, UnitsPerPallet: 30}}))
	require.NoError(t, s.Set(ctx, model.DepotArticleConfig{Enabled: true}))

	snap, err = BuildSnapshot(ctx, s, s)
	require.NoError(t, err)
	assert.True(t, snap.HasOrders)
	assert.Len(t, snap.Orders, 1)
	assert.True(t, snap.DepotConfig.Enabled)
}
