package cache

import (
	"context"
	"sync"

	"FinAdvisor/internal/domain/models"
)

// MemoryStore is an in-process SnapshotStore. Used when redis is disabled
// and throughout the tests. Freshness is judged by the instrument cache, so
// the store itself only keeps the latest record per key.
type MemoryStore struct {
	mu      sync.RWMutex
	m       map[string]models.SnapshotRecord
	maxSize int
}

// NewMemoryStore creates an in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]models.SnapshotRecord), maxSize: 4096}
}

func (s *MemoryStore) FindOne(_ context.Context, key string) (*models.SnapshotRecord, error) {
	s.mu.RLock()
	rec, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Upsert(_ context.Context, key string, rec *models.SnapshotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.m[key]; !exists && len(s.m) >= s.maxSize {
		// drop the oldest entry; the universe is small enough that precise
		// LRU bookkeeping is not worth carrying
		var oldest string
		for k, v := range s.m {
			if oldest == "" || v.FetchedAt.Before(s.m[oldest].FetchedAt) {
				oldest = k
			}
		}
		delete(s.m, oldest)
	}
	s.m[key] = *rec
	return nil
}
