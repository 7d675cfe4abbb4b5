package reminder

import (
	"context"
	"errors"
	c "orderping/internal/core/domain/common"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/db/recordstore"
	"time"
)

// dbSchedule carries the exact wire field names of the reminder
// schedule collection. These names are the contract with the record
// store and must round-trip unchanged.
type dbSchedule struct {
	OrderID                string     `json:"orderId"`
	DesignerID             string     `json:"designerId"`
	OriginalNotificationID string     `json:"originalNotificationId"`
	IsActive               bool       `json:"isActive"`
	ReminderCount          int        `json:"reminderCount"`
	MaxReminders           int        `json:"maxReminders"`
	NextReminderAt         time.Time  `json:"nextReminderAt"`
	LastReminderSent       *time.Time `json:"lastReminderSent"`
	StoppedReason          string     `json:"stoppedReason"`
	StoppedAt              *time.Time `json:"stoppedAt"`
}

type StoreScheduleRepository struct {
	store               recordstore.Store
	collection          string
	defaultMaxReminders int
}

func NewStoreScheduleRepository(
	store recordstore.Store,
	collection string,
	defaultMaxReminders int,
) *StoreScheduleRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if defaultMaxReminders <= 0 {
		defaultMaxReminders = reminder.DEFAULT_MAX_REMINDERS
	}
	return &StoreScheduleRepository{
		store:               store,
		collection:          collection,
		defaultMaxReminders: defaultMaxReminders,
	}
}

func (r *StoreScheduleRepository) ReadDue(
	ctx context.Context,
	dueAt time.Time,
) ([]reminder.Schedule, error) {
	records, err := r.store.Query(ctx, r.collection, []recordstore.Filter{
		recordstore.Where("isActive", recordstore.OpEqual, true),
		recordstore.Where("nextReminderAt", recordstore.OpLessOrEqual, dueAt),
	})
	if err != nil {
		return nil, err
	}
	return r.decodeSchedules(records)
}

func (r *StoreScheduleRepository) ReadActiveByOrder(
	ctx context.Context,
	orderID string,
	designerID string,
) ([]reminder.Schedule, error) {
	records, err := r.store.Query(ctx, r.collection, []recordstore.Filter{
		recordstore.Where("orderId", recordstore.OpEqual, orderID),
		recordstore.Where("designerId", recordstore.OpEqual, designerID),
		recordstore.Where("isActive", recordstore.OpEqual, true),
	})
	if err != nil {
		return nil, err
	}
	return r.decodeSchedules(records)
}

func (r *StoreScheduleRepository) Update(ctx context.Context, input reminder.UpdateInput) error {
	fields := make(map[string]interface{})
	if input.DoActiveUpdate {
		fields["isActive"] = input.IsActive
	}
	if input.DoReminderCountUpdate {
		fields["reminderCount"] = input.ReminderCount
	}
	if input.DoNextReminderAtUpdate {
		fields["nextReminderAt"] = input.NextReminderAt
	}
	if input.DoLastReminderSentUpdate {
		fields["lastReminderSent"] = optionalTime(input.LastReminderSent)
	}
	if input.DoStopReasonUpdate {
		fields["stoppedReason"] = input.StopReason.String()
	}
	if input.DoStoppedAtUpdate {
		fields["stoppedAt"] = optionalTime(input.StoppedAt)
	}

	err := r.store.Update(ctx, r.collection, string(input.ID), fields)
	if errors.Is(err, recordstore.ErrRecordDoesNotExist) {
		return reminder.ErrScheduleDoesNotExist
	}
	return err
}

func (r *StoreScheduleRepository) decodeSchedules(
	records []recordstore.Record,
) ([]reminder.Schedule, error) {
	schedules := make([]reminder.Schedule, 0, len(records))
	for _, record := range records {
		schedule, err := r.decodeSchedule(record)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

func (r *StoreScheduleRepository) decodeSchedule(
	record recordstore.Record,
) (schedule reminder.Schedule, err error) {
	var doc dbSchedule
	if err := record.Decode(&doc); err != nil {
		return schedule, err
	}

	stopReason, err := reminder.ParseStopReason(doc.StoppedReason)
	if err != nil {
		return schedule, err
	}
	maxReminders := doc.MaxReminders
	if maxReminders <= 0 {
		maxReminders = r.defaultMaxReminders
	}

	return reminder.Schedule{
		ID:                     reminder.ID(record.ID),
		OrderID:                doc.OrderID,
		DesignerID:             doc.DesignerID,
		OriginalNotificationID: doc.OriginalNotificationID,
		IsActive:               doc.IsActive,
		ReminderCount:          doc.ReminderCount,
		MaxReminders:           maxReminders,
		NextReminderAt:         doc.NextReminderAt,
		LastReminderSent:       decodeOptionalTime(doc.LastReminderSent),
		StopReason:             stopReason,
		StoppedAt:              decodeOptionalTime(doc.StoppedAt),
	}, nil
}

type dbAcknowledgment struct {
	OrderID    string `json:"orderId"`
	DesignerID string `json:"designerId"`
	IsRead     bool   `json:"isRead"`
}

type StoreAcknowledgmentRepository struct {
	store      recordstore.Store
	collection string
}

func NewStoreAcknowledgmentRepository(
	store recordstore.Store,
	collection string,
) *StoreAcknowledgmentRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &StoreAcknowledgmentRepository{store: store, collection: collection}
}

func (r *StoreAcknowledgmentRepository) GetByOrderAndDesigner(
	ctx context.Context,
	orderID string,
	designerID string,
) (ack reminder.Acknowledgment, err error) {
	records, err := r.store.Query(ctx, r.collection, []recordstore.Filter{
		recordstore.Where("orderId", recordstore.OpEqual, orderID),
		recordstore.Where("designerId", recordstore.OpEqual, designerID),
	})
	if err != nil {
		return ack, err
	}
	if len(records) == 0 {
		return ack, reminder.ErrAcknowledgmentDoesNotExist
	}

	// isRead defaults to false when the field is absent.
	var doc dbAcknowledgment
	if err := records[0].Decode(&doc); err != nil {
		return ack, err
	}
	return reminder.Acknowledgment{
		OrderID:    orderID,
		DesignerID: designerID,
		IsRead:     doc.IsRead,
	}, nil
}

func optionalTime(value c.Optional[time.Time]) interface{} {
	if !value.IsPresent {
		return nil
	}
	return value.Value
}

func decodeOptionalTime(value *time.Time) c.Optional[time.Time] {
	if value == nil {
		return c.Optional[time.Time]{}
	}
	return c.NewOptional(*value, true)
}
