package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type TestScheduleRepository struct {
	ReadDueError    error
	DueSchedules    []Schedule
	ReadDueWith     []time.Time
	ReadActiveError error
	ReadActiveWith  [][2]string
	UpdateError     error
	Updates         []UpdateInput
	active          map[string][]Schedule
	lock            sync.Mutex
}

func NewTestScheduleRepository() *TestScheduleRepository {
	return &TestScheduleRepository{active: make(map[string][]Schedule)}
}

// SetActive registers schedules returned by ReadActiveByOrder for the
// given pair.
func (r *TestScheduleRepository) SetActive(orderID string, designerID string, schedules ...Schedule) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.active[pairKey(orderID, designerID)] = schedules
}

func (r *TestScheduleRepository) ReadDue(ctx context.Context, dueAt time.Time) ([]Schedule, error) {
	if r.ReadDueError != nil {
		return nil, r.ReadDueError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadDueWith = append(r.ReadDueWith, dueAt)
	return r.DueSchedules, nil
}

func (r *TestScheduleRepository) ReadActiveByOrder(
	ctx context.Context,
	orderID string,
	designerID string,
) ([]Schedule, error) {
	if r.ReadActiveError != nil {
		return nil, r.ReadActiveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadActiveWith = append(r.ReadActiveWith, [2]string{orderID, designerID})
	return r.active[pairKey(orderID, designerID)], nil
}

func (r *TestScheduleRepository) Update(ctx context.Context, input UpdateInput) error {
	r.lock.Lock()
	r.Updates = append(r.Updates, input)
	r.lock.Unlock()
	return r.UpdateError
}

type TestAcknowledgmentRepository struct {
	GetError        error
	acknowledgments map[string]Acknowledgment
	lock            sync.Mutex
}

func NewTestAcknowledgmentRepository() *TestAcknowledgmentRepository {
	return &TestAcknowledgmentRepository{acknowledgments: make(map[string]Acknowledgment)}
}

func (r *TestAcknowledgmentRepository) SetRead(orderID string, designerID string, isRead bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.acknowledgments[pairKey(orderID, designerID)] = Acknowledgment{
		OrderID:    orderID,
		DesignerID: designerID,
		IsRead:     isRead,
	}
}

func (r *TestAcknowledgmentRepository) GetByOrderAndDesigner(
	ctx context.Context,
	orderID string,
	designerID string,
) (Acknowledgment, error) {
	if r.GetError != nil {
		return Acknowledgment{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	ack, ok := r.acknowledgments[pairKey(orderID, designerID)]
	if !ok {
		return Acknowledgment{}, ErrAcknowledgmentDoesNotExist
	}
	return ack, nil
}

type TestNotificationSink struct {
	EnqueueError error
	Enqueued     []Notification
	lock         sync.Mutex
}

func NewTestNotificationSink() *TestNotificationSink {
	return &TestNotificationSink{}
}

func (s *TestNotificationSink) Enqueue(ctx context.Context, notification Notification) error {
	if s.EnqueueError != nil {
		return s.EnqueueError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Enqueued = append(s.Enqueued, notification)
	return nil
}

type TestNotificationRepository struct {
	CreateError error
	Created     []Notification
	NextID      string
	lock        sync.Mutex
}

func NewTestNotificationRepository(nextID string) *TestNotificationRepository {
	return &TestNotificationRepository{NextID: nextID}
}

func (r *TestNotificationRepository) Create(ctx context.Context, notification Notification) (string, error) {
	if r.CreateError != nil {
		return "", r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Created = append(r.Created, notification)
	return r.NextID, nil
}

type TestDispatchQueueRepository struct {
	CreateError error
	CreatedFor  []string
	lock        sync.Mutex
}

func NewTestDispatchQueueRepository() *TestDispatchQueueRepository {
	return &TestDispatchQueueRepository{}
}

func (r *TestDispatchQueueRepository) Create(
	ctx context.Context,
	notificationID string,
	notification Notification,
) (string, error) {
	if r.CreateError != nil {
		return "", r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreatedFor = append(r.CreatedFor, notificationID)
	return fmt.Sprintf("queue-%d", len(r.CreatedFor)), nil
}

type TestDispatchPublisher struct {
	PublishError error
	PublishedFor []string
	lock         sync.Mutex
}

func NewTestDispatchPublisher() *TestDispatchPublisher {
	return &TestDispatchPublisher{}
}

func (p *TestDispatchPublisher) PublishDispatch(
	ctx context.Context,
	notificationID string,
	notification Notification,
) error {
	if p.PublishError != nil {
		return p.PublishError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.PublishedFor = append(p.PublishedFor, notificationID)
	return nil
}

func pairKey(orderID string, designerID string) string {
	return orderID + "::" + designerID
}
