package reminder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStopReason(t *testing.T) {
	assert := require.New(t)

	for raw, expected := range map[string]StopReason{
		"":             StopReasonNone,
		"none":         StopReasonNone,
		"max_reached":  StopReasonMaxReached,
		"acknowledged": StopReasonAcknowledged,
		"error":        StopReasonError,
	} {
		parsed, err := ParseStopReason(raw)
		assert.Nil(err)
		assert.Equal(expected, parsed)
	}

	_, err := ParseStopReason("something-else")
	assert.ErrorIs(err, ErrParseStopReason)
}

func TestStopReasonString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("none", StopReasonNone.String())
	assert.Equal("max_reached", StopReasonMaxReached.String())
	assert.Equal("acknowledged", StopReasonAcknowledged.String())
	assert.Equal("error", StopReasonError.String())
}
