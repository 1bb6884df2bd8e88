package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/models"
	"github.com/mr-thop/recruit-edge-api/internal/scheduler"
	"github.com/mr-thop/recruit-edge-api/internal/store"
)

// recordingSender captures sent invitations; emails in failFor fail.
type recordingSender struct {
	sent    []string
	failFor map[string]bool
}

func (r *recordingSender) Send(ctx context.Context, to, subject, body string) error {
	if r.failFor[to] {
		return fmt.Errorf("mailbox unavailable")
	}
	r.sent = append(r.sent, to)
	return nil
}

func testParams(t *testing.T) scheduler.Params {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04", "2024-01-08 09:00")
	if err != nil {
		t.Fatalf("bad test timestamp: %v", err)
	}
	return scheduler.Params{Start: start, SlotLength: 30, Break: 60}
}

// TestScheduleInterviews tests the compute-store-notify flow
func TestScheduleInterviews(t *testing.T) {
	st := store.NewMemoryStore()
	sender := &recordingSender{}
	svc := NewService(st, sender, zap.NewNop(), time.Hour)

	candidates := []models.Candidate{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Grace", Email: "grace@example.com"},
	}

	record, err := svc.ScheduleInterviews(context.Background(), candidates, testParams(t))
	if err != nil {
		t.Fatalf("ScheduleInterviews() failed: %v", err)
	}

	if record.ID == "" {
		t.Error("Expected a schedule ID")
	}
	if len(record.Slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(record.Slots))
	}

	// Stored under the returned ID.
	stored, err := svc.GetSchedule(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetSchedule() failed: %v", err)
	}
	if len(stored.Slots) != 2 {
		t.Errorf("Stored schedule has %d slots, want 2", len(stored.Slots))
	}

	// One invitation per slot, in slot order.
	if len(sender.sent) != 2 || sender.sent[0] != "ada@example.com" || sender.sent[1] != "grace@example.com" {
		t.Errorf("Unexpected invitations: %v", sender.sent)
	}
}

// TestScheduleInterviews_SendFailuresDoNotFail tests that delivery
// failures are logged, not fatal
func TestScheduleInterviews_SendFailuresDoNotFail(t *testing.T) {
	st := store.NewMemoryStore()
	sender := &recordingSender{failFor: map[string]bool{"grace@example.com": true}}
	svc := NewService(st, sender, zap.NewNop(), time.Hour)

	candidates := []models.Candidate{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Grace", Email: "grace@example.com"},
		{Name: "Edsger", Email: "edsger@example.com"},
	}

	record, err := svc.ScheduleInterviews(context.Background(), candidates, testParams(t))
	if err != nil {
		t.Fatalf("ScheduleInterviews() failed: %v", err)
	}
	if len(record.Slots) != 3 {
		t.Errorf("Expected all candidates scheduled, got %d slots", len(record.Slots))
	}
	if len(sender.sent) != 2 {
		t.Errorf("Expected 2 delivered invitations, got %d", len(sender.sent))
	}
}

// TestScheduleInterviews_InvalidParams tests that scheduler errors
// surface unchanged and nothing is stored or sent
func TestScheduleInterviews_InvalidParams(t *testing.T) {
	st := store.NewMemoryStore()
	sender := &recordingSender{}
	svc := NewService(st, sender, zap.NewNop(), time.Hour)

	_, err := svc.ScheduleInterviews(context.Background(), nil, testParams(t))
	if !errors.Is(err, scheduler.ErrInvalidParameters) {
		t.Fatalf("Expected ErrInvalidParameters, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("Expected no invitations on invalid input, got %d", len(sender.sent))
	}
}
