package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

func sampleRecord(id string) models.ScheduleRecord {
	start := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	return models.ScheduleRecord{
		ID: id,
		Slots: models.Schedule{
			{
				Candidate: models.Candidate{Name: "Ada", Email: "ada@example.com"},
				Start:     start,
				End:       start.Add(30 * time.Minute),
			},
		},
		CreatedAt: start,
	}
}

// TestMemoryStore_SaveAndGet tests the round trip
func TestMemoryStore_SaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	record := sampleRecord("abc")
	if err := s.Save(ctx, record, time.Hour); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.ID != record.ID || len(got.Slots) != 1 {
		t.Errorf("Unexpected record: %+v", got)
	}
}

// TestMemoryStore_Missing tests ErrNotFound for unknown IDs
func TestMemoryStore_Missing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestMemoryStore_Expiry tests lazy TTL expiry
func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.Save(ctx, sampleRecord("abc"), 10*time.Minute); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := s.Get(ctx, "abc"); err != nil {
		t.Fatalf("Expected record before expiry, got %v", err)
	}

	current = current.Add(11 * time.Minute)
	if _, err := s.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after expiry, got %v", err)
	}
}

// TestMemoryStore_ZeroTTLKeepsRecord tests that non-positive TTLs mean
// no expiry
func TestMemoryStore_ZeroTTLKeepsRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.Save(ctx, sampleRecord("keep"), 0); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	current = current.Add(1000 * time.Hour)
	if _, err := s.Get(ctx, "keep"); err != nil {
		t.Errorf("Expected record without TTL to persist, got %v", err)
	}
}
