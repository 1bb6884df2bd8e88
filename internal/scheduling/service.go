// Package scheduling orchestrates a scheduling request: generate the
// slot assignment, retain it for export, and dispatch invitations.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/models"
	"github.com/mr-thop/recruit-edge-api/internal/notify"
	"github.com/mr-thop/recruit-edge-api/internal/scheduler"
	"github.com/mr-thop/recruit-edge-api/internal/store"
)

// Service wires the pure scheduler to the schedule store and the
// invitation sender
type Service struct {
	store  store.ScheduleStore
	sender notify.Sender
	logger *zap.Logger
	ttl    time.Duration
}

// NewService creates a scheduling service. ttl bounds how long a
// computed schedule stays downloadable.
func NewService(st store.ScheduleStore, sender notify.Sender, logger *zap.Logger, ttl time.Duration) *Service {
	return &Service{
		store:  st,
		sender: sender,
		logger: logger,
		ttl:    ttl,
	}
}

// ScheduleInterviews computes a schedule, stores it under a fresh ID
// and emails one invitation per slot. Invitation failures are logged
// and do not fail the request; the schedule itself is the result.
func (s *Service) ScheduleInterviews(ctx context.Context, candidates []models.Candidate, params scheduler.Params) (models.ScheduleRecord, error) {
	slots, err := scheduler.Generate(candidates, params)
	if err != nil {
		return models.ScheduleRecord{}, err
	}

	record := models.ScheduleRecord{
		ID:        uuid.New().String(),
		Slots:     slots,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Save(ctx, record, s.ttl); err != nil {
		return models.ScheduleRecord{}, fmt.Errorf("failed to store schedule: %w", err)
	}

	s.logger.Info("schedule computed",
		zap.String("scheduleID", record.ID),
		zap.Int("candidates", len(candidates)),
		zap.Time("firstSlot", slots[0].Start),
		zap.Time("lastSlot", slots[len(slots)-1].End),
	)

	s.dispatchInvitations(ctx, record)

	return record, nil
}

// GetSchedule returns a previously computed schedule
func (s *Service) GetSchedule(ctx context.Context, id string) (models.ScheduleRecord, error) {
	return s.store.Get(ctx, id)
}

// dispatchInvitations sends one invitation per slot, continuing past
// individual failures
func (s *Service) dispatchInvitations(ctx context.Context, record models.ScheduleRecord) {
	sent := 0
	for _, slot := range record.Slots {
		subject, body := notify.Invitation(slot)
		if err := s.sender.Send(ctx, slot.Candidate.Email, subject, body); err != nil {
			s.logger.Warn("failed to send invitation",
				zap.String("scheduleID", record.ID),
				zap.String("email", slot.Candidate.Email),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.logger.Info("invitations dispatched",
		zap.String("scheduleID", record.ID),
		zap.Int("sent", sent),
		zap.Int("total", len(record.Slots)),
	)
}
