package view

import "errors"

// LoadFailure is the only error the table can carry. Msg is what the user
// sees; it stays on screen for the rest of the session.
type LoadFailure struct {
	Msg   string
	Cause error
}

func (e *LoadFailure) Error() string { return e.Msg }
func (e *LoadFailure) Unwrap() error { return e.Cause }

func newLoadFailure(cause error) *LoadFailure {
	var lf *LoadFailure
	if errors.As(cause, &lf) {
		return lf
	}
	msg := "load failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &LoadFailure{Msg: msg, Cause: cause}
}
