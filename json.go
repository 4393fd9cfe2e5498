package fsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// FSMState is a serializable snapshot of the FSM's position: the current state,
// the previous state (empty when none is recorded) and the redo stack.
// The state graph itself is not part of the snapshot.
type FSMState struct {
	Current  State          `json:"current"`
	Previous State          `json:"previous,omitempty"`
	Undo     g.Slice[State] `json:"undo"`
}

// MarshalJSON implements the json.Marshaler interface.
func (f *FSM) MarshalJSON() ([]byte, error) {
	state := FSMState{
		Current: f.current,
		Undo:    f.undo.Clone(),
	}

	if f.hasPrevious {
		state.Previous = f.previous
	}

	if state.Undo == nil {
		state.Undo = g.Slice[State]{}
	}

	return json.Marshal(state)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Every state in the snapshot must be declared in the FSM's configuration;
// otherwise an *ErrInvalidState is returned and the FSM is left unchanged.
func (f *FSM) UnmarshalJSON(data []byte) error {
	var state FSMState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal fsm state: %w", err)
	}

	if !f.cfg.Has(state.Current) {
		return &ErrInvalidState{State: state.Current}
	}

	if state.Previous != "" && !f.cfg.Has(state.Previous) {
		return &ErrInvalidState{State: state.Previous}
	}

	for s := range state.Undo.Iter() {
		if !f.cfg.Has(s) {
			return &ErrInvalidState{State: s}
		}
	}

	f.current = state.Current
	f.previous, f.hasPrevious = state.Previous, state.Previous != ""
	f.undo = state.Undo

	return nil
}
