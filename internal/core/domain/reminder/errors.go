package reminder

import "errors"

var (
	ErrScheduleDoesNotExist       = errors.New("reminder schedule does not exist")
	ErrAcknowledgmentDoesNotExist = errors.New("acknowledgment does not exist")
)
