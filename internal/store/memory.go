package store

import (
	"context"
	"sync"

	"github.com/restockd/replenishment-service/internal/domain/model"
)

// DefaultMaxSessions bounds how many upload sessions each dataset type
// retains in memory before the oldest is evicted.
const DefaultMaxSessions = 16

// bucket retains the rows of up to max sessions for one dataset type and
// remembers which session was saved last.
type bucket[T any] struct {
	mu       sync.RWMutex
	sessions map[string][]T
	order    []string
	latest   string
	max      int
}

func newBucket[T any](max int) *bucket[T] {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &bucket[T]{
		sessions: make(map[string][]T),
		max:      max,
	}
}

func (b *bucket[T]) put(sessionID string, rows []T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.sessions[sessionID]; !exists {
		b.order = append(b.order, sessionID)
	}
	b.sessions[sessionID] = rows
	b.latest = sessionID

	// Evict oldest sessions beyond the bound, never the latest one.
	for len(b.order) > b.max {
		oldest := b.order[0]
		b.order = b.order[1:]
		if oldest == b.latest {
			b.order = append(b.order, oldest)
			continue
		}
		delete(b.sessions, oldest)
	}
}

func (b *bucket[T]) latestRows() ([]T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.latest == "" {
		return nil, false
	}
	rows, ok := b.sessions[b.latest]
	return rows, ok
}

// MemoryStore is the in-process implementation of DatasetStore and
// DepotConfigStore. Writes are guarded by per-bucket locks; concurrent
// uploads race only on the latest pointer, where the last completed write
// wins.
type MemoryStore struct {
	orders  *bucket[model.OrderLine]
	stock   *bucket[model.CentralStockEntry]
	transit *bucket[model.TransitEntry]

	cfgMu sync.RWMutex
	cfg   model.DepotArticleConfig
}

// NewMemoryStore creates a MemoryStore retaining up to maxSessions sessions
// per dataset type.
func NewMemoryStore(maxSessions int) *MemoryStore {
	return &MemoryStore{
		orders:  newBucket[model.OrderLine](maxSessions),
		stock:   newBucket[model.CentralStockEntry](maxSessions),
		transit: newBucket[model.TransitEntry](maxSessions),
	}
}

// SaveOrders stores an order dataset under the session id.
func (s *MemoryStore) SaveOrders(_ context.Context, sessionID string, lines []model.OrderLine) error {
	s.orders.put(sessionID, lines)
	return nil
}

// SaveCentralStock stores a central stock dataset under the session id.
func (s *MemoryStore) SaveCentralStock(_ context.Context, sessionID string, entries []model.CentralStockEntry) error {
	s.stock.put(sessionID, entries)
	return nil
}

// SaveTransit stores a transit dataset under the session id.
func (s *MemoryStore) SaveTransit(_ context.Context, sessionID string, entries []model.TransitEntry) error {
	s.transit.put(sessionID, entries)
	return nil
}

// LatestOrders returns the most recently saved order dataset.
func (s *MemoryStore) LatestOrders(_ context.Context) ([]model.OrderLine, bool, error) {
	rows, ok := s.orders.latestRows()
	return rows, ok, nil
}

// LatestCentralStock returns the most recently saved central stock dataset.
func (s *MemoryStore) LatestCentralStock(_ context.Context) ([]model.CentralStockEntry, bool, error) {
	rows, ok := s.stock.latestRows()
	return rows, ok, nil
}

// LatestTransit returns the most recently saved transit dataset.
func (s *MemoryStore) LatestTransit(_ context.Context) ([]model.TransitEntry, bool, error) {
	rows, ok := s.transit.latestRows()
	return rows, ok, nil
}

// Get returns the current depot-article configuration.
func (s *MemoryStore) Get(_ context.Context) (model.DepotArticleConfig, error) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg, nil
}

// Set replaces the depot-article configuration wholesale.
func (s *MemoryStore) Set(_ context.Context, cfg model.DepotArticleConfig) error {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.cfg = cfg
	return nil
}
