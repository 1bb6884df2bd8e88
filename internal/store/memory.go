package store

import (
	"context"
	"sync"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

type memoryEntry struct {
	record    models.ScheduleRecord
	expiresAt time.Time
}

// MemoryStore is the in-process ScheduleStore used when no Redis is
// configured, and in tests
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save stores a schedule for ttl. A non-positive ttl keeps the record
// until process exit.
func (s *MemoryStore) Save(ctx context.Context, record models.ScheduleRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{record: record}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.entries[record.ID] = entry
	return nil
}

// Get returns a stored schedule, expiring lazily
func (s *MemoryStore) Get(ctx context.Context, id string) (models.ScheduleRecord, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return models.ScheduleRecord{}, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return models.ScheduleRecord{}, ErrNotFound
	}
	return entry.record, nil
}

var _ ScheduleStore = (*MemoryStore)(nil)
