package notification

import (
	"context"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/db/recordstore"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)

func newNotification() reminder.Notification {
	return reminder.NewOrderReminder(
		reminder.Schedule{
			ID:                     "schedule-1",
			OrderID:                "order-1",
			DesignerID:             "designer-1",
			OriginalNotificationID: "notification-1",
			MaxReminders:           6,
			ReminderCount:          2,
		},
		3,
	)
}

func TestCreateNotification(t *testing.T) {
	// Setup ---
	store := recordstore.NewFakeStore()
	repo := NewStoreNotificationRepository(store, "notifications", func() time.Time { return Now })

	// Exercise ---
	id, err := repo.Create(context.Background(), newNotification())

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.NotEmpty(id)
	assert.Len(store.Created, 1)
	created := store.Created[0].(dbNotification)
	assert.Equal("designer-1", created.DesignerID)
	assert.Equal("high", created.Priority)
	assert.Equal("order-1", created.Payload.OrderID)
	assert.Equal("notification-1", created.Payload.OriginalNotificationID)
	assert.Equal(3, created.Payload.ReminderNumber)
	assert.Equal("view_order", created.Payload.Action)
	assert.Equal(Now, created.CreatedAt)
}

func TestCreateDispatchQueueEntry(t *testing.T) {
	// Setup ---
	store := recordstore.NewFakeStore()
	repo := NewStoreDispatchQueueRepository(store, "notification_queue", func() time.Time { return Now })

	// Exercise ---
	id, err := repo.Create(context.Background(), "created-notification-1", newNotification())

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.NotEmpty(id)
	assert.Len(store.Created, 1)
	created := store.Created[0].(dbQueueEntry)
	assert.Equal("created-notification-1", created.NotificationID)
	assert.Equal("designer-1", created.DesignerID)
	assert.Equal("pending", created.Status)
	assert.Equal(Now, created.EnqueuedAt)
}
