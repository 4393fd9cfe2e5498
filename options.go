package fsm

import "log/slog"

// Option configures an FSM during construction.
type Option func(*FSM)

// WithLogger sets the logger used for debug records of state changes.
// By default the FSM logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FSM) {
		if logger != nil {
			f.logger = logger
		}
	}
}
