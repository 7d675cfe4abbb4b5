package recordstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildQueryWithoutFilters(t *testing.T) {
	// Exercise ---
	sql, args, err := buildQuery("reminder_schedules", nil)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("SELECT id, data FROM documents WHERE collection = $1", sql)
	assert.Equal([]interface{}{"reminder_schedules"}, args)
}

func TestBuildQueryWithTypedFilters(t *testing.T) {
	// Setup ---
	dueAt := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	filters := []Filter{
		Where("isActive", OpEqual, true),
		Where("nextReminderAt", OpLessOrEqual, dueAt),
		Where("designerId", OpEqual, "designer-1"),
		Where("reminderCount", OpGreaterOrEqual, 3),
	}

	// Exercise ---
	sql, args, err := buildQuery("reminder_schedules", filters)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(
		"SELECT id, data FROM documents WHERE collection = $1"+
			" AND (data->>'isActive')::boolean = $2"+
			" AND (data->>'nextReminderAt')::timestamptz <= $3"+
			" AND data->>'designerId' = $4"+
			" AND (data->>'reminderCount')::numeric >= $5",
		sql,
	)
	assert.Equal([]interface{}{"reminder_schedules", true, dueAt, "designer-1", 3}, args)
}

func TestBuildQueryRejectsInvalidFieldName(t *testing.T) {
	// Setup ---
	filters := []Filter{Where("isActive' OR '1'='1", OpEqual, true)}

	// Exercise ---
	_, _, err := buildQuery("reminder_schedules", filters)

	// Verify ---
	require.ErrorIs(t, err, ErrInvalidFilterField)
}

func TestBuildQueryRejectsUnsetOperator(t *testing.T) {
	// Setup ---
	filters := []Filter{{Field: "isActive", Value: true}}

	// Exercise ---
	_, _, err := buildQuery("reminder_schedules", filters)

	// Verify ---
	require.ErrorIs(t, err, ErrInvalidFilterOperator)
}
