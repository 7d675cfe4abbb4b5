package reconcilereminders

import (
	"context"
	"errors"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/logging"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/core/services"
	"time"
)

type Input struct{}

func (i Input) GetRateLimitKey() string {
	return "reconcile-reminders"
}

type Result struct {
	ProcessedCount int
}

// service runs one reconciliation tick over the due reminder schedules.
//
// Due schedules are processed one at a time. A failure of the due query
// fails the whole tick; a failure while processing a single schedule
// force-stops that schedule and the tick moves on. There is no
// transactional tie between the acknowledgment check and the dispatch,
// so a reminder may still fire shortly after the original notification
// was read. Overlapping ticks may likewise both act on the same
// schedule; updates are last-write-wins.
type service struct {
	log              logging.Logger
	schedules        reminder.ScheduleRepository
	acknowledgments  reminder.AcknowledgmentRepository
	sink             reminder.NotificationSink
	reminderInterval time.Duration
	now              func() time.Time
}

func New(
	log logging.Logger,
	schedules reminder.ScheduleRepository,
	acknowledgments reminder.AcknowledgmentRepository,
	sink reminder.NotificationSink,
	reminderInterval time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if schedules == nil {
		panic(e.NewNilArgumentError("schedules"))
	}
	if acknowledgments == nil {
		panic(e.NewNilArgumentError("acknowledgments"))
	}
	if sink == nil {
		panic(e.NewNilArgumentError("sink"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		schedules:        schedules,
		acknowledgments:  acknowledgments,
		sink:             sink,
		reminderInterval: reminderInterval,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()

	dueSchedules, err := s.schedules.ReadDue(ctx, now)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	s.log.Info(ctx, "Got due reminder schedules.", logging.Entry("count", len(dueSchedules)))

	for _, schedule := range dueSchedules {
		if s.isAcknowledged(ctx, schedule) {
			s.stopAcknowledgedChains(ctx, schedule, now)
			continue
		}
		if err := s.dispatch(ctx, schedule, now); err != nil {
			s.forceStop(ctx, schedule, now)
			continue
		}
		result.ProcessedCount++
	}

	s.log.Info(
		ctx,
		"Reminder reconciliation finished.",
		logging.Entry("dueCount", len(dueSchedules)),
		logging.Entry("processedCount", result.ProcessedCount),
	)
	return result, nil
}

// isAcknowledged reports whether the original notification has been
// read. Lookup failures default to "not read" so that reminding
// continues rather than the chain being silently canceled.
func (s *service) isAcknowledged(ctx context.Context, schedule reminder.Schedule) bool {
	ack, err := s.acknowledgments.GetByOrderAndDesigner(ctx, schedule.OrderID, schedule.DesignerID)
	if err != nil {
		if !errors.Is(err, reminder.ErrAcknowledgmentDoesNotExist) {
			s.log.Warning(
				ctx,
				"Could not read acknowledgment, assuming not read.",
				logging.Entry("scheduleID", schedule.ID),
				logging.Entry("orderID", schedule.OrderID),
				logging.Entry("err", err),
			)
		}
		return false
	}
	return ack.IsRead
}

// stopAcknowledgedChains deactivates every active schedule of the pair,
// not only the due one, to cover multiple outstanding chains for the
// same order. Failures are logged and left for the next tick.
func (s *service) stopAcknowledgedChains(ctx context.Context, schedule reminder.Schedule, now time.Time) {
	activeSchedules, err := s.schedules.ReadActiveByOrder(ctx, schedule.OrderID, schedule.DesignerID)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not read active schedules for cancellation, will retry next tick.",
			logging.Entry("scheduleID", schedule.ID),
			logging.Entry("orderID", schedule.OrderID),
			logging.Entry("err", err),
		)
		return
	}

	stoppedCount := 0
	for _, activeSchedule := range activeSchedules {
		update := reminder.NewStopUpdate(activeSchedule.ID, reminder.StopReasonAcknowledged, now)
		if err := s.schedules.Update(ctx, update); err != nil {
			s.log.Warning(
				ctx,
				"Could not stop acknowledged schedule, will retry next tick.",
				logging.Entry("scheduleID", activeSchedule.ID),
				logging.Entry("err", err),
			)
			continue
		}
		stoppedCount++
	}

	s.log.Info(
		ctx,
		"Reminder chain acknowledged, schedules stopped.",
		logging.Entry("orderID", schedule.OrderID),
		logging.Entry("designerID", schedule.DesignerID),
		logging.Entry("stoppedCount", stoppedCount),
	)
}

// dispatch sends the next reminder and advances the schedule, stopping
// it instead when the chain has reached its maximum length.
func (s *service) dispatch(ctx context.Context, schedule reminder.Schedule, now time.Time) error {
	reminderNumber := schedule.NextReminderNumber()

	notification := reminder.NewOrderReminder(schedule, reminderNumber)
	if err := s.sink.Enqueue(ctx, notification); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("scheduleID", schedule.ID))
		return err
	}

	var update reminder.UpdateInput
	if reminderNumber >= schedule.MaxReminders {
		update = reminder.NewStopUpdate(schedule.ID, reminder.StopReasonMaxReached, now)
	} else {
		update = reminder.NewAdvanceUpdate(schedule.ID, reminderNumber, now, now.Add(s.reminderInterval))
	}
	if err := s.schedules.Update(ctx, update); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("scheduleID", schedule.ID))
		return err
	}

	s.log.Info(
		ctx,
		"Reminder dispatched.",
		logging.Entry("scheduleID", schedule.ID),
		logging.Entry("orderID", schedule.OrderID),
		logging.Entry("reminderNumber", reminderNumber),
		logging.Entry("maxReached", reminderNumber >= schedule.MaxReminders),
	)
	return nil
}

// forceStop deactivates a schedule that failed processing so that one
// bad record cannot keep failing every tick.
func (s *service) forceStop(ctx context.Context, schedule reminder.Schedule, now time.Time) {
	update := reminder.NewStopUpdate(schedule.ID, reminder.StopReasonError, now)
	if err := s.schedules.Update(ctx, update); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("scheduleID", schedule.ID))
	}
}
