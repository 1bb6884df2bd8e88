// Package store keeps computed schedules retrievable for rendering and
// export. Schedules are short-lived values, so both implementations
// are caches with a TTL rather than durable storage.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// ErrNotFound is returned when a schedule is unknown or has expired
var ErrNotFound = errors.New("schedule not found")

// ScheduleStore holds computed schedules by ID
type ScheduleStore interface {
	Save(ctx context.Context, record models.ScheduleRecord, ttl time.Duration) error
	Get(ctx context.Context, id string) (models.ScheduleRecord, error)
}
