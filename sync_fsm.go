package fsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*SyncFSM)(nil)

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically executes a state transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// CanTrigger is the thread-safe version of FSM.CanTrigger.
func (sf *SyncFSM) CanTrigger(event Event) bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanTrigger(event)
}

// ChangeState is the thread-safe version of FSM.ChangeState.
// It moves the FSM to a declared state, bypassing the transition table.
func (sf *SyncFSM) ChangeState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.ChangeState(s)
}

// Current is the thread-safe version of FSM.Current.
// It returns the FSM's current state.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Previous is the thread-safe version of FSM.Previous.
func (sf *SyncFSM) Previous() (State, bool) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Previous()
}

// Initial returns the FSM's initial state. It never changes, so no lock is taken.
func (sf *SyncFSM) Initial() State { return sf.fsm.Initial() }

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// CanUndo is the thread-safe version of FSM.CanUndo.
func (sf *SyncFSM) CanUndo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanUndo()
}

// CanRedo is the thread-safe version of FSM.CanRedo.
func (sf *SyncFSM) CanRedo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanRedo()
}

// UndoHistory is the thread-safe version of FSM.UndoHistory.
// It returns a copy of the redo stack.
func (sf *SyncFSM) UndoHistory() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.UndoHistory()
}

// States returns declared states. The configuration is immutable, so no lock is taken.
func (sf *SyncFSM) States(event ...Event) g.Slice[State] { return sf.fsm.States(event...) }

// Events returns every configured event. The configuration is immutable, so no lock is taken.
func (sf *SyncFSM) Events() g.Slice[Event] { return sf.fsm.Events() }

// ToDOT is the thread-safe version of FSM.ToDOT.
// It generates a DOT language string representation of the FSM for visualization.
func (sf *SyncFSM) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

// ToMermaid is the thread-safe version of FSM.ToMermaid.
func (sf *SyncFSM) ToMermaid() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToMermaid()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the FSM's state to JSON.
func (sf *SyncFSM) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the FSM's state from JSON.
func (sf *SyncFSM) UnmarshalJSON(data []byte) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalJSON(data)
}
