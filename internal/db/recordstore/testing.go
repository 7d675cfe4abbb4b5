package recordstore

import (
	"context"
	"fmt"
	"sync"
)

type FakeUpdate struct {
	Collection string
	ID         string
	Fields     map[string]interface{}
}

type FakeStore struct {
	QueryError  error
	QueriedWith [][]Filter
	CreateError error
	Created     []interface{}
	UpdateError error
	Updates     []FakeUpdate
	records     map[string][]Record
	lock        sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{records: make(map[string][]Record)}
}

// SetRecords registers the records returned by Query for a collection.
// Filters are recorded but not evaluated.
func (s *FakeStore) SetRecords(collection string, records ...Record) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.records[collection] = records
}

func (s *FakeStore) Query(ctx context.Context, collection string, filters []Filter) ([]Record, error) {
	if s.QueryError != nil {
		return nil, s.QueryError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.QueriedWith = append(s.QueriedWith, filters)
	return s.records[collection], nil
}

func (s *FakeStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	if s.CreateError != nil {
		return "", s.CreateError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Created = append(s.Created, document)
	return fmt.Sprintf("%s-%d", collection, len(s.Created)), nil
}

func (s *FakeStore) Update(
	ctx context.Context,
	collection string,
	id string,
	fields map[string]interface{},
) error {
	if s.UpdateError != nil {
		return s.UpdateError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Updates = append(s.Updates, FakeUpdate{Collection: collection, ID: id, Fields: fields})
	return nil
}
