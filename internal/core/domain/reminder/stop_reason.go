package reminder

import "errors"

var ErrParseStopReason = errors.New("invalid stop reason")

type StopReason struct {
	v string
}

func (r StopReason) String() string {
	if r.v == "" {
		return "none"
	}
	return r.v
}

func ParseStopReason(value string) (StopReason, error) {
	switch value {
	case "", "none":
		return StopReasonNone, nil
	case "max_reached":
		return StopReasonMaxReached, nil
	case "acknowledged":
		return StopReasonAcknowledged, nil
	case "error":
		return StopReasonError, nil
	default:
		return StopReasonNone, ErrParseStopReason
	}
}

var (
	StopReasonNone         = StopReason{}
	StopReasonMaxReached   = StopReason{v: "max_reached"}
	StopReasonAcknowledged = StopReason{v: "acknowledged"}
	StopReasonError        = StopReason{v: "error"}
)
