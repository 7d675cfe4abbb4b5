package notification

import (
	"context"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/db/recordstore"
	"time"
)

type dbPayload struct {
	OrderID                string `json:"orderId"`
	OriginalNotificationID string `json:"originalNotificationId"`
	ReminderNumber         int    `json:"reminderNumber"`
	Action                 string `json:"action"`
}

type dbNotification struct {
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	DesignerID string    `json:"designerId"`
	Priority   string    `json:"priority"`
	Payload    dbPayload `json:"payload"`
	CreatedAt  time.Time `json:"createdAt"`
}

// StoreNotificationRepository persists outgoing reminder notifications.
type StoreNotificationRepository struct {
	store      recordstore.Store
	collection string
	now        func() time.Time
}

func NewStoreNotificationRepository(
	store recordstore.Store,
	collection string,
	now func() time.Time,
) *StoreNotificationRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &StoreNotificationRepository{store: store, collection: collection, now: now}
}

func (r *StoreNotificationRepository) Create(
	ctx context.Context,
	notification reminder.Notification,
) (string, error) {
	return r.store.Create(ctx, r.collection, dbNotification{
		Title:      notification.Title,
		Body:       notification.Body,
		DesignerID: notification.DesignerID,
		Priority:   notification.Priority.String(),
		Payload: dbPayload{
			OrderID:                notification.Payload.OrderID,
			OriginalNotificationID: notification.Payload.OriginalNotificationID,
			ReminderNumber:         notification.Payload.ReminderNumber,
			Action:                 notification.Payload.Action,
		},
		CreatedAt: r.now(),
	})
}

type dbQueueEntry struct {
	NotificationID string    `json:"notificationId"`
	DesignerID     string    `json:"designerId"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	EnqueuedAt     time.Time `json:"enqueuedAt"`
}

// StoreDispatchQueueRepository appends entries to the notification
// dispatch queue collection consumed by the delivery workers.
type StoreDispatchQueueRepository struct {
	store      recordstore.Store
	collection string
	now        func() time.Time
}

func NewStoreDispatchQueueRepository(
	store recordstore.Store,
	collection string,
	now func() time.Time,
) *StoreDispatchQueueRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &StoreDispatchQueueRepository{store: store, collection: collection, now: now}
}

func (r *StoreDispatchQueueRepository) Create(
	ctx context.Context,
	notificationID string,
	notification reminder.Notification,
) (string, error) {
	return r.store.Create(ctx, r.collection, dbQueueEntry{
		NotificationID: notificationID,
		DesignerID:     notification.DesignerID,
		Priority:       notification.Priority.String(),
		Status:         "pending",
		EnqueuedAt:     r.now(),
	})
}
