package services

import (
	"orderping/internal/app/deps"
	drl "orderping/internal/core/domain/ratelimiter"
	"orderping/internal/core/services"
	ratelimiting "orderping/internal/core/services/rate_limiting"
	reconcilereminders "orderping/internal/core/services/reconcile_reminders"
)

type Services struct {
	ReconcileReminders          services.Service[reconcilereminders.Input, reconcilereminders.Result]
	ReconcileRemindersByTrigger services.Service[reconcilereminders.Input, reconcilereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ReconcileReminders = reconcilereminders.New(
		deps.Logger,
		deps.ScheduleRepository,
		deps.AcknowledgmentRepository,
		deps.NotificationSink,
		deps.Config.ReminderInterval,
		deps.Now,
	)

	// The HTTP trigger shares the reconciliation service but is rate
	// limited, the periodic job is not.
	s.ReconcileRemindersByTrigger = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: uint16(deps.Config.TriggerRateLimitPerMinute)},
		s.ReconcileReminders,
	)

	return s
}
