package fsm

import (
	"log/slog"
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Transitions is the transition table of a single state: event -> target state.
	Transitions map[Event]State

	// Config is the declarative description of a state graph.
	// States keep the order in which they were declared.
	Config struct {
		initial State
		order   g.Slice[State]
		states  g.Map[State, Transitions]
	}

	// FSM is the main state machine struct.
	FSM struct {
		cfg         *Config
		initial     State
		current     State
		previous    State
		hasPrevious bool
		undo        g.Slice[State]

		logger *slog.Logger
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
