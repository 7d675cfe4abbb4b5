package reminder

import (
	"context"
	"fmt"
)

const ActionViewOrder = "view_order"

type Priority struct {
	v string
}

func (p Priority) String() string {
	return p.v
}

var (
	PriorityNormal = Priority{v: "normal"}
	PriorityHigh   = Priority{v: "high"}
)

// Payload is the structured part of a reminder notification. It always
// carries the full order id, the display title only the short form.
type Payload struct {
	OrderID                string
	OriginalNotificationID string
	ReminderNumber         int
	Action                 string
}

// Notification is the ephemeral value dispatched for one reminder. Many
// notifications are emitted over the life of one schedule.
type Notification struct {
	Title      string
	Body       string
	DesignerID string
	Payload    Payload
	Priority   Priority
}

func NewOrderReminder(schedule Schedule, reminderNumber int) Notification {
	shortID := shortOrderID(schedule.OrderID)
	return Notification{
		Title:      fmt.Sprintf("Reminder: order %s is waiting for you", shortID),
		Body:       fmt.Sprintf("Order %s has an unread update. This is reminder %d of %d.", shortID, reminderNumber, schedule.MaxReminders),
		DesignerID: schedule.DesignerID,
		Payload: Payload{
			OrderID:                schedule.OrderID,
			OriginalNotificationID: schedule.OriginalNotificationID,
			ReminderNumber:         reminderNumber,
			Action:                 ActionViewOrder,
		},
		Priority: PriorityHigh,
	}
}

func shortOrderID(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}

// NotificationSink accepts a notification for delivery. Fan-out to the
// actual transports is entirely the sink's responsibility.
type NotificationSink interface {
	Enqueue(ctx context.Context, notification Notification) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification Notification) (string, error)
}

type DispatchQueueRepository interface {
	Create(ctx context.Context, notificationID string, notification Notification) (string, error)
}

type DispatchPublisher interface {
	PublishDispatch(ctx context.Context, notificationID string, notification Notification) error
}
