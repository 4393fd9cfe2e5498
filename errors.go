package fsm

import (
	"errors"
	"fmt"
)

// ErrConfig is returned when a state machine cannot be built from the supplied
// configuration: the configuration is missing, its initial state is not declared,
// or a configuration document cannot be decoded.
type ErrConfig struct {
	// Reason describes what is wrong with the configuration.
	Reason string
	// Err is the underlying decoding error, if any.
	Err error
}

func (e *ErrConfig) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fsm: invalid config: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("fsm: invalid config: %s", e.Reason)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrConfig) Unwrap() error { return e.Err }

// ErrInvalidState is returned when a requested target state is not declared in the
// configured state graph. When the target was looked up through an event, From and
// Event describe the lookup; State is empty if the current state has no transition
// for that event.
type ErrInvalidState struct {
	State State
	From  State
	Event Event
}

func (e *ErrInvalidState) Error() string {
	switch {
	case e.Event != "" && e.State == "":
		return fmt.Sprintf("fsm: no transition for event %q from state %q", e.Event, e.From)
	case e.Event != "":
		return fmt.Sprintf("fsm: event %q from state %q leads to unknown state %q", e.Event, e.From, e.State)
	default:
		return fmt.Sprintf("fsm: unknown state %q", e.State)
	}
}

// IsConfigError reports whether err is or wraps an *ErrConfig.
func IsConfigError(err error) bool {
	var e *ErrConfig
	return errors.As(err, &e)
}

// IsInvalidStateError reports whether err is or wraps an *ErrInvalidState.
func IsInvalidStateError(err error) bool {
	var e *ErrInvalidState
	return errors.As(err, &e)
}
