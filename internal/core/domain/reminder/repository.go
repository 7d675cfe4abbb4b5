package reminder

import (
	"context"
	c "orderping/internal/core/domain/common"
	"time"
)

type UpdateInput struct {
	ID                       ID
	DoActiveUpdate           bool
	IsActive                 bool
	DoReminderCountUpdate    bool
	ReminderCount            int
	DoNextReminderAtUpdate   bool
	NextReminderAt           time.Time
	DoLastReminderSentUpdate bool
	LastReminderSent         c.Optional[time.Time]
	DoStopReasonUpdate       bool
	StopReason               StopReason
	DoStoppedAtUpdate        bool
	StoppedAt                c.Optional[time.Time]
}

// NewStopUpdate deactivates a schedule. Stopped schedules are terminal.
func NewStopUpdate(id ID, reason StopReason, at time.Time) UpdateInput {
	return UpdateInput{
		ID:                 id,
		DoActiveUpdate:     true,
		IsActive:           false,
		DoStopReasonUpdate: true,
		StopReason:         reason,
		DoStoppedAtUpdate:  true,
		StoppedAt:          c.NewOptional(at, true),
	}
}

// NewAdvanceUpdate records a successful dispatch and reschedules the
// next reminder.
func NewAdvanceUpdate(id ID, reminderCount int, sentAt time.Time, nextAt time.Time) UpdateInput {
	return UpdateInput{
		ID:                       id,
		DoReminderCountUpdate:    true,
		ReminderCount:            reminderCount,
		DoLastReminderSentUpdate: true,
		LastReminderSent:         c.NewOptional(sentAt, true),
		DoNextReminderAtUpdate:   true,
		NextReminderAt:           nextAt,
	}
}

type ScheduleRepository interface {
	// ReadDue returns every active schedule whose next reminder time is
	// at or before dueAt.
	ReadDue(ctx context.Context, dueAt time.Time) ([]Schedule, error)
	// ReadActiveByOrder returns every active schedule of the given
	// (order, designer) pair.
	ReadActiveByOrder(ctx context.Context, orderID string, designerID string) ([]Schedule, error)
	// Update applies a partial update; untouched fields keep their
	// stored values.
	Update(ctx context.Context, input UpdateInput) error
}
