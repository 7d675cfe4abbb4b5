package notificationsink

import (
	"context"
	"errors"
	"orderping/internal/core/domain/logging"
	"orderping/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/require"
)

func newNotification() reminder.Notification {
	return reminder.NewOrderReminder(
		reminder.Schedule{
			ID:                     "schedule-1",
			OrderID:                "order-1",
			DesignerID:             "designer-1",
			OriginalNotificationID: "notification-1",
			MaxReminders:           6,
		},
		1,
	)
}

func TestNotificationEnqueued(t *testing.T) {
	// Setup ---
	notifications := reminder.NewTestNotificationRepository("created-1")
	queue := reminder.NewTestDispatchQueueRepository()
	publisher := reminder.NewTestDispatchPublisher()
	sink := New(logging.NewFakeLogger(), notifications, queue, publisher)

	// Exercise ---
	err := sink.Enqueue(context.Background(), newNotification())

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(notifications.Created, 1)
	assert.Equal([]string{"created-1"}, queue.CreatedFor)
	assert.Equal([]string{"created-1"}, publisher.PublishedFor)
}

func TestNotificationCreateErrorStopsEnqueue(t *testing.T) {
	// Setup ---
	notifications := reminder.NewTestNotificationRepository("created-1")
	notifications.CreateError = errors.New("test error")
	queue := reminder.NewTestDispatchQueueRepository()
	publisher := reminder.NewTestDispatchPublisher()
	sink := New(logging.NewFakeLogger(), notifications, queue, publisher)

	// Exercise ---
	err := sink.Enqueue(context.Background(), newNotification())

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, notifications.CreateError)
	assert.Len(queue.CreatedFor, 0)
	assert.Len(publisher.PublishedFor, 0)
}

func TestPublishErrorPropagates(t *testing.T) {
	// Setup ---
	notifications := reminder.NewTestNotificationRepository("created-1")
	queue := reminder.NewTestDispatchQueueRepository()
	publisher := reminder.NewTestDispatchPublisher()
	publisher.PublishError = errors.New("test error")
	sink := New(logging.NewFakeLogger(), notifications, queue, publisher)

	// Exercise ---
	err := sink.Enqueue(context.Background(), newNotification())

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, publisher.PublishError)
	assert.Equal([]string{"created-1"}, queue.CreatedFor)
}
