// Package fsm provides a finite state machine driven by a declarative state graph,
// with event-triggered transitions and single-level undo/redo of state changes.
// It is built with types and utilities from the github.com/enetx/g library.
package fsm

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
)

// Interface compliance check.
var _ StateMachine = (*FSM)(nil)

// New creates a new FSM from the given configuration.
// The configuration is copied, so later changes to cfg do not affect the machine.
// It returns an *ErrConfig if cfg is nil or its initial state is not declared.
func New(cfg *Config, opts ...Option) (*FSM, error) {
	if cfg == nil {
		return nil, &ErrConfig{Reason: "config is required"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &FSM{
		cfg:     cfg.clone(),
		initial: cfg.initial,
		current: cfg.initial,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// MustNew is like New but panics if the machine cannot be created.
func MustNew(cfg *Config, opts ...Option) *FSM {
	f, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}

	return f
}

// Clone creates a new FSM instance with the same configuration but a fresh state.
func (f *FSM) Clone() *FSM {
	return &FSM{
		cfg:     f.cfg,
		initial: f.initial,
		current: f.initial,
		logger:  f.logger,
	}
}

// Sync wraps the FSM into a SyncFSM for concurrent use.
// The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Config returns a copy of the machine's configuration.
func (f *FSM) Config() *Config { return f.cfg.clone() }

// Initial returns the FSM's initial state.
func (f *FSM) Initial() State { return f.initial }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.current }

// Previous returns the state occupied before the last state change.
// The boolean is false before any state change has happened.
func (f *FSM) Previous() (State, bool) { return f.previous, f.hasPrevious }

// UndoHistory returns a copy of the redo stack, bottom first.
func (f *FSM) UndoHistory() g.Slice[State] { return f.undo.Clone() }

// ChangeState moves the FSM to the given declared state, bypassing the transition table.
// The undo stack is left untouched.
func (f *FSM) ChangeState(state State) error {
	if !f.cfg.Has(state) {
		return &ErrInvalidState{State: state}
	}

	f.changeState(state)

	return nil
}

func (f *FSM) changeState(state State) {
	f.logger.Debug("state changed", "from", f.current, "to", state)

	f.previous, f.hasPrevious = f.current, true
	f.current = state
}

// Trigger attempts to transition using the given event.
// On success the redo history is discarded: a new forward transition starts a new branch.
func (f *FSM) Trigger(event Event) error {
	to, ok := f.cfg.target(f.current, event)
	if !ok || !f.cfg.Has(to) {
		return &ErrInvalidState{State: to, From: f.current, Event: event}
	}

	f.logger.Debug("event triggered", "event", event, "state", f.current)

	f.changeState(to)
	f.undo = nil

	return nil
}

// CanTrigger reports whether Trigger(event) would succeed from the current state.
func (f *FSM) CanTrigger(event Event) bool {
	to, ok := f.cfg.target(f.current, event)
	return ok && f.cfg.Has(to)
}

// Reset moves the FSM back to its initial state.
// The previous state and the undo stack are kept.
func (f *FSM) Reset() {
	f.logger.Debug("reset", "from", f.current, "to", f.initial)
	f.current = f.initial
}

// ClearHistory sets both the current and the previous state to the initial state.
// The undo stack itself is kept.
func (f *FSM) ClearHistory() {
	f.logger.Debug("history cleared", "from", f.current)
	f.previous, f.hasPrevious = f.initial, true
	f.current = f.initial
}

// States returns declared states in declaration order. When an event is given,
// only states that declare a transition for it are returned.
func (f *FSM) States(event ...Event) g.Slice[State] {
	if len(event) == 0 || event[0] == "" {
		return f.cfg.States()
	}

	return f.cfg.order.Iter().
		Exclude(func(s State) bool {
			_, ok := f.cfg.states[s][event[0]]
			return !ok
		}).
		Collect()
}

// Events returns every event named in the configuration.
func (f *FSM) Events() g.Slice[Event] { return f.cfg.Events() }

// CanUndo reports whether Undo would move the FSM.
func (f *FSM) CanUndo() bool { return f.current != f.initial && f.hasPrevious }

// Undo goes back to the previous state and records the current one for Redo.
// It returns false when the FSM is in its initial state, which is treated as having
// no history. Only one level is tracked: undoing twice in a row returns to the
// state that the first Undo left.
func (f *FSM) Undo() bool {
	if !f.CanUndo() {
		return false
	}

	f.logger.Debug("undo", "from", f.current, "to", f.previous)

	f.undo.Push(f.current)
	f.changeState(f.previous)

	return true
}

// CanRedo reports whether Redo would move the FSM.
func (f *FSM) CanRedo() bool { return f.undo.NotEmpty() }

// Redo re-enters the state most recently left by Undo.
// It returns false when there is nothing to redo.
func (f *FSM) Redo() bool {
	if !f.CanRedo() {
		return false
	}

	last := len(f.undo) - 1
	state := f.undo[last]
	f.undo = f.undo[:last]

	f.logger.Debug("redo", "from", f.current, "to", state)

	f.changeState(state)

	return true
}
