package recordstore_test

import (
	"context"
	"encoding/json"
	"orderping/internal/db"
	"orderping/internal/db/recordstore"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const Collection = "test_documents"

type testDocument struct {
	OrderID        string    `json:"orderId"`
	IsActive       bool      `json:"isActive"`
	ReminderCount  int       `json:"reminderCount"`
	NextReminderAt time.Time `json:"nextReminderAt"`
}

type pgxStoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *recordstore.PgxStore
}

func (suite *pgxStoreTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.store = recordstore.NewPgxStore(suite.pool)
}

func (suite *pgxStoreTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *pgxStoreTestSuite) TearDownTest() {
	db.TruncateDocuments(suite.pool)
}

func TestPgxStore(t *testing.T) {
	if db.TestDatabaseURL() == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(pgxStoreTestSuite))
}

func (suite *pgxStoreTestSuite) TestCreateAndQuery() {
	// Setup ---
	now := time.Now().UTC().Truncate(time.Second)
	dueID := suite.create(testDocument{
		OrderID:        "order-1",
		IsActive:       true,
		ReminderCount:  2,
		NextReminderAt: now.Add(-time.Minute),
	})
	suite.create(testDocument{
		OrderID:        "order-2",
		IsActive:       true,
		ReminderCount:  0,
		NextReminderAt: now.Add(time.Hour),
	})
	suite.create(testDocument{
		OrderID:        "order-3",
		IsActive:       false,
		ReminderCount:  6,
		NextReminderAt: now.Add(-time.Minute),
	})

	// Exercise ---
	records, err := suite.store.Query(context.Background(), Collection, []recordstore.Filter{
		recordstore.Where("isActive", recordstore.OpEqual, true),
		recordstore.Where("nextReminderAt", recordstore.OpLessOrEqual, now),
	})

	// Verify ---
	suite.Nil(err)
	suite.Len(records, 1)
	suite.Equal(dueID, records[0].ID)

	var decoded testDocument
	suite.Nil(records[0].Decode(&decoded))
	suite.Equal("order-1", decoded.OrderID)
	suite.Equal(2, decoded.ReminderCount)
}

func (suite *pgxStoreTestSuite) TestUpdateMergesFields() {
	// Setup ---
	now := time.Now().UTC().Truncate(time.Second)
	id := suite.create(testDocument{
		OrderID:        "order-1",
		IsActive:       true,
		ReminderCount:  2,
		NextReminderAt: now,
	})

	// Exercise ---
	err := suite.store.Update(context.Background(), Collection, id, map[string]interface{}{
		"isActive":      false,
		"stoppedReason": "acknowledged",
	})

	// Verify ---
	suite.Nil(err)
	records, err := suite.store.Query(context.Background(), Collection, []recordstore.Filter{
		recordstore.Where("orderId", recordstore.OpEqual, "order-1"),
	})
	suite.Nil(err)
	suite.Len(records, 1)

	var merged map[string]interface{}
	suite.Nil(json.Unmarshal(records[0].Data, &merged))
	// Untouched fields survive the partial update.
	suite.Equal(float64(2), merged["reminderCount"])
	suite.Equal(false, merged["isActive"])
	suite.Equal("acknowledged", merged["stoppedReason"])
}

func (suite *pgxStoreTestSuite) TestUpdateMissingRecord() {
	// Exercise ---
	err := suite.store.Update(context.Background(), Collection, "missing-id", map[string]interface{}{
		"isActive": false,
	})

	// Verify ---
	suite.ErrorIs(err, recordstore.ErrRecordDoesNotExist)
}

func (suite *pgxStoreTestSuite) create(document testDocument) string {
	id, err := suite.store.Create(context.Background(), Collection, document)
	suite.Require().Nil(err)
	return id
}
