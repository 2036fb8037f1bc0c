package mission

import (
	"errors"
	"fmt"
)

// Reason classifies a rejected intent.
type Reason string

const (
	ReasonAlreadyTraveling Reason = "already-traveling"
	ReasonSameLocation     Reason = "same-location"
	ReasonInsufficientFuel Reason = "insufficient-fuel"
	ReasonIllegalRoute     Reason = "illegal-route"
	ReasonAlreadyScanning  Reason = "already-scanning"
	ReasonMissionOver      Reason = "mission-over"
)

// Rejection is returned for an intent that was refused. A rejected intent
// never changes mission state.
type Rejection struct {
	Reason Reason
	Detail string
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return string(r.Reason)
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
}

// Is matches any rejection with the same reason, so callers can write
// errors.Is(err, ErrInsufficientFuel) regardless of detail.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Reason == r.Reason
}

func reject(reason Reason, format string, args ...interface{}) *Rejection {
	return &Rejection{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

var (
	ErrAlreadyTraveling = &Rejection{Reason: ReasonAlreadyTraveling}
	ErrSameLocation     = &Rejection{Reason: ReasonSameLocation}
	ErrInsufficientFuel = &Rejection{Reason: ReasonInsufficientFuel}
	ErrIllegalRoute     = &Rejection{Reason: ReasonIllegalRoute}
	ErrAlreadyScanning  = &Rejection{Reason: ReasonAlreadyScanning}
	ErrMissionOver      = &Rejection{Reason: ReasonMissionOver}
)

// Contract violations. These indicate a caller bug, not a game event.
var (
	ErrUnknownBody  = errors.New("unknown body")
	ErrUnknownTool  = errors.New("unknown tool")
	ErrUnknownLevel = errors.New("unknown level")
	ErrClosed       = errors.New("mission closed")
)

// IsRejection reports whether err is a recoverable rejection and returns it.
func IsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
