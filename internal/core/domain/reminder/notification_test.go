package reminder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrderReminder(t *testing.T) {
	// Setup ---
	schedule := Schedule{
		ID:                     "schedule-1",
		OrderID:                "7c21e9b4-order-id-long-form",
		DesignerID:             "designer-1",
		OriginalNotificationID: "notification-1",
		IsActive:               true,
		ReminderCount:          2,
		MaxReminders:           6,
	}

	// Exercise ---
	notification := NewOrderReminder(schedule, 3)

	// Verify ---
	assert := require.New(t)
	assert.Contains(notification.Title, "7c21e9b4")
	assert.NotContains(notification.Title, schedule.OrderID)
	assert.Contains(notification.Body, "reminder 3 of 6")
	assert.Equal("designer-1", notification.DesignerID)
	assert.Equal(schedule.OrderID, notification.Payload.OrderID)
	assert.Equal("notification-1", notification.Payload.OriginalNotificationID)
	assert.Equal(3, notification.Payload.ReminderNumber)
	assert.Equal(ActionViewOrder, notification.Payload.Action)
	assert.Equal(PriorityHigh, notification.Priority)
}

func TestNewOrderReminderShortOrderID(t *testing.T) {
	// Setup ---
	schedule := Schedule{OrderID: "ord-1", DesignerID: "designer-1", MaxReminders: 6}

	// Exercise ---
	notification := NewOrderReminder(schedule, 1)

	// Verify ---
	require.Contains(t, notification.Title, "ord-1")
}
