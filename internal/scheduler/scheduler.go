package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/mr-thop/recruit-edge-api/internal/models"
)

// ErrInvalidParameters is returned for inputs the scheduler refuses to
// compute on: an empty candidate list or non-positive durations.
var ErrInvalidParameters = errors.New("invalid scheduling parameters")

// Params holds the scheduling request parameters
type Params struct {
	// Start is the earliest possible slot start (date + time of day).
	Start time.Time
	// SlotLength is the interview length in minutes.
	SlotLength int
	// Break is the lunch break length in minutes.
	Break int
	// Day overrides the working-day window. Zero value means the
	// reference window (09:00-16:00, break at 12:30).
	Day WorkingDay
}

// WorkingDay describes the daily interview window as offsets from
// midnight. The lunch break begins at BreakStart and runs for the
// break length given in Params.
type WorkingDay struct {
	Opening    time.Duration
	Closing    time.Duration
	BreakStart time.Duration
}

// DefaultWorkingDay is the reference window: interviews run 09:00-16:00
// with the lunch break starting at 12:30.
var DefaultWorkingDay = WorkingDay{
	Opening:    9 * time.Hour,
	Closing:    16 * time.Hour,
	BreakStart: 12*time.Hour + 30*time.Minute,
}

func (d WorkingDay) isZero() bool {
	return d.Opening == 0 && d.Closing == 0 && d.BreakStart == 0
}

// Generate assigns one slot per candidate, in input order, respecting
// the working-day window and the lunch break, rolling over to the next
// day as many times as needed. It is a pure function: identical inputs
// always produce identical schedules.
func Generate(candidates []models.Candidate, params Params) (models.Schedule, error) {
	if err := validate(candidates, params); err != nil {
		return nil, err
	}

	day := params.Day
	if day.isZero() {
		day = DefaultWorkingDay
	}

	slotLen := time.Duration(params.SlotLength) * time.Minute
	breakLen := time.Duration(params.Break) * time.Minute

	// A slot must fit either the morning segment or the afternoon
	// segment of some day, or rollover would never terminate.
	morning := day.BreakStart - day.Opening
	afternoon := day.Closing - (day.BreakStart + breakLen)
	if slotLen > morning && slotLen > afternoon {
		return nil, fmt.Errorf("%w: a %d minute slot does not fit the working day", ErrInvalidParameters, params.SlotLength)
	}

	current := alignToWindow(params.Start, day)

	schedule := make(models.Schedule, 0, len(candidates))
	for _, cand := range candidates {
		current = nextFit(current, slotLen, breakLen, day)
		schedule = append(schedule, models.Slot{
			Candidate: cand,
			Start:     current,
			End:       current.Add(slotLen),
		})
		current = current.Add(slotLen)
	}

	return schedule, nil
}

// validate rejects malformed input before any computation
func validate(candidates []models.Candidate, params Params) error {
	if len(candidates) == 0 {
		return fmt.Errorf("%w: candidate list is empty", ErrInvalidParameters)
	}
	if params.SlotLength <= 0 {
		return fmt.Errorf("%w: slot length must be positive, got %d", ErrInvalidParameters, params.SlotLength)
	}
	if params.Break <= 0 {
		return fmt.Errorf("%w: break length must be positive, got %d", ErrInvalidParameters, params.Break)
	}
	return nil
}

// alignToWindow clamps the requested start into the working-day window:
// before opening moves to opening the same day, at or after closing
// moves to the next day's opening.
func alignToWindow(start time.Time, day WorkingDay) time.Time {
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	offset := start.Sub(midnight)

	switch {
	case offset < day.Opening:
		return midnight.Add(day.Opening)
	case offset >= day.Closing:
		return midnight.AddDate(0, 0, 1).Add(day.Opening)
	default:
		return start
	}
}

// nextFit advances the cursor until a full slot fits: skipping past the
// lunch break when the slot would start inside it or cross into it, and
// rolling to the next day's opening when the slot would run past
// closing. The break rule is re-applied after every advance, so a
// window where opening + slot crosses the break is still handled.
func nextFit(current time.Time, slotLen, breakLen time.Duration, day WorkingDay) time.Time {
	for {
		midnight := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, current.Location())
		breakStart := midnight.Add(day.BreakStart)
		breakEnd := breakStart.Add(breakLen)
		closing := midnight.Add(day.Closing)

		// A slot ending exactly at break start is fine; only starting
		// inside the break or crossing into it triggers the skip.
		startsInBreak := !current.Before(breakStart) && current.Before(breakEnd)
		crossesBreak := current.Before(breakStart) && current.Add(slotLen).After(breakStart)
		if startsInBreak || crossesBreak {
			current = breakEnd
			continue
		}

		// Ending exactly at closing is allowed.
		if current.Add(slotLen).After(closing) {
			current = midnight.AddDate(0, 0, 1).Add(day.Opening)
			continue
		}

		return current
	}
}
