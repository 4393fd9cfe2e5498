package fsm

import "github.com/enetx/g"

// StateMachine is implemented by FSM and its thread-safe wrapper SyncFSM.
type StateMachine interface {
	Trigger(Event) error
	CanTrigger(Event) bool
	ChangeState(State) error
	Current() State
	Previous() (State, bool)
	Initial() State
	Reset()
	ClearHistory()
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	UndoHistory() g.Slice[State]
	States(...Event) g.Slice[State]
	Events() g.Slice[Event]
	ToDOT() g.String
	ToMermaid() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}
