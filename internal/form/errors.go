package form

import "errors"

// ErrSubmitInFlight is returned when a submission is attempted while another
// one for the same form instance hasn't finished yet.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ValidationError is a pre-flight failure: it never reaches the network.
// Field names the wire field that failed, Reason is the user-visible message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
