package scheduling

import (
	"errors"
	"fmt"
)

// ErrConflict means the requested range collides with a non-cancelled
// appointment. Raised both by the pre-check and by the store's overlap
// constraint when two bookings race.
var ErrConflict = errors.New("slot already booked")

// ErrOutOfAvailability means the requested range does not fit inside any of
// the doctor's working windows, or the doctor is absent that day.
var ErrOutOfAvailability = errors.New("time is outside the doctor's availability")

// ErrPermissionDenied means the acting role may not perform the operation at
// all, regardless of the appointment's state.
var ErrPermissionDenied = errors.New("permission denied")

// InvalidTransitionError reports a lifecycle move the state machine forbids,
// either because the target is unreachable from the current status or because
// the acting role may not perform it.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot move appointment from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("cannot move appointment from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is (or wraps) a transition error.
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}
