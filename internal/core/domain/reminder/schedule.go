package reminder

import (
	c "orderping/internal/core/domain/common"
	e "orderping/internal/core/domain/errors"
	"time"
)

type ID string

const DEFAULT_MAX_REMINDERS = 6

// Schedule tracks one reminder chain tied to an (order, designer) pair.
// It is created by the originating notification flow and mutated only by
// the reconciliation service. A stopped schedule is terminal and is kept
// for audit.
type Schedule struct {
	ID                     ID
	OrderID                string
	DesignerID             string
	OriginalNotificationID string
	IsActive               bool
	ReminderCount          int
	MaxReminders           int
	NextReminderAt         time.Time
	LastReminderSent       c.Optional[time.Time]
	StopReason             StopReason
	StoppedAt              c.Optional[time.Time]
}

func (s *Schedule) Validate() error {
	if s.MaxReminders <= 0 {
		return e.NewInvalidStateError("MaxReminders must be positive")
	}
	if s.ReminderCount < 0 {
		return e.NewInvalidStateError("ReminderCount must not be negative")
	}
	if s.ReminderCount > s.MaxReminders {
		return e.NewInvalidStateError("ReminderCount must not exceed MaxReminders")
	}
	if s.IsActive && s.StopReason != StopReasonNone {
		return e.NewInvalidStateError("StopReason must not be set for active schedules")
	}
	if !s.IsActive && s.StopReason == StopReasonNone {
		return e.NewInvalidStateError("StopReason must be set for stopped schedules")
	}
	if !s.IsActive && !s.StoppedAt.IsPresent {
		return e.NewInvalidStateError("StoppedAt must be set for stopped schedules")
	}
	return nil
}

// NextReminderNumber is the ordinal of the reminder the next dispatch
// would carry.
func (s *Schedule) NextReminderNumber() int {
	return s.ReminderCount + 1
}
