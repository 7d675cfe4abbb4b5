package notificationsink

import (
	"context"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/logging"
	"orderping/internal/core/domain/reminder"
)

// Sink persists an outgoing notification, appends it to the dispatch
// queue and publishes the dispatch message for the delivery workers.
type Sink struct {
	log           logging.Logger
	notifications reminder.NotificationRepository
	queue         reminder.DispatchQueueRepository
	publisher     reminder.DispatchPublisher
}

func New(
	log logging.Logger,
	notifications reminder.NotificationRepository,
	queue reminder.DispatchQueueRepository,
	publisher reminder.DispatchPublisher,
) *Sink {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifications == nil {
		panic(e.NewNilArgumentError("notifications"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &Sink{
		log:           log,
		notifications: notifications,
		queue:         queue,
		publisher:     publisher,
	}
}

func (s *Sink) Enqueue(ctx context.Context, notification reminder.Notification) error {
	notificationID, err := s.notifications.Create(ctx, notification)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("designerID", notification.DesignerID))
		return err
	}

	if _, err := s.queue.Create(ctx, notificationID, notification); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("notificationID", notificationID))
		return err
	}

	if err := s.publisher.PublishDispatch(ctx, notificationID, notification); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("notificationID", notificationID))
		return err
	}

	s.log.Info(
		ctx,
		"Reminder notification enqueued for dispatch.",
		logging.Entry("notificationID", notificationID),
		logging.Entry("designerID", notification.DesignerID),
		logging.Entry("reminderNumber", notification.Payload.ReminderNumber),
	)
	return nil
}
