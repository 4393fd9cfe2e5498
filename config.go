package fsm

import (
	"fmt"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// UndeclaredTarget describes a transition whose target state is not declared in the config.
// Such a transition is legal to declare, but triggering it fails with ErrInvalidState.
type UndeclaredTarget struct {
	From  State
	Event Event
	To    State
}

// NewConfig creates an empty configuration starting in the given initial state.
// The initial state must be declared with State or Transition before the config is used.
func NewConfig(initial State) *Config {
	return &Config{
		initial: initial,
		states:  g.Map[State, Transitions]{},
	}
}

// State declares a state with its transition table. Redeclaring a state replaces its
// table but keeps its original position in the declaration order.
func (c *Config) State(name State, transitions Transitions) *Config {
	if !c.states.Contains(name) {
		c.order.Push(name)
	}

	table := make(Transitions, len(transitions))
	for event, to := range transitions {
		table[event] = to
	}

	c.states[name] = table

	return c
}

// Transition adds a single from -> event -> to rule, declaring from if needed.
// The target state is not declared implicitly.
func (c *Config) Transition(from State, event Event, to State) *Config {
	if !c.states.Contains(from) {
		c.State(from, nil)
	}

	c.states[from][event] = to

	return c
}

// Initial returns the configured initial state.
func (c *Config) Initial() State { return c.initial }

// Has reports whether the state is declared.
func (c *Config) Has(state State) bool { return c.states.Contains(state) }

// States returns a copy of the declared states in declaration order.
func (c *Config) States() g.Slice[State] { return c.order.Clone() }

// Transitions returns a copy of the transition table of a declared state.
func (c *Config) Transitions(state State) (Transitions, bool) {
	table, ok := c.states[state]
	if !ok {
		return nil, false
	}

	out := make(Transitions, len(table))
	for event, to := range table {
		out[event] = to
	}

	return out, true
}

// target returns the state reached from `from` on `event`, if such a rule exists.
func (c *Config) target(from State, event Event) (State, bool) {
	table, ok := c.states[from]
	if !ok {
		return "", false
	}

	to, ok := table[event]

	return to, ok
}

// Events returns every event named in the config, ordered by the first state
// that declares it and alphabetically within a state.
func (c *Config) Events() g.Slice[Event] {
	seen := g.NewSet[Event]()

	var events g.Slice[Event]

	for state := range c.order.Iter() {
		for event := range c.sortedEvents(state).Iter() {
			if !seen.Contains(event) {
				seen.Insert(event)
				events.Push(event)
			}
		}
	}

	return events
}

// UndeclaredTargets lists transitions pointing at states that are not declared.
func (c *Config) UndeclaredTargets() g.Slice[UndeclaredTarget] {
	var out g.Slice[UndeclaredTarget]

	for state := range c.order.Iter() {
		for event := range c.sortedEvents(state).Iter() {
			to := c.states[state][event]
			if !c.states.Contains(to) {
				out.Push(UndeclaredTarget{From: state, Event: event, To: to})
			}
		}
	}

	return out
}

// Validate checks that the initial state is set and declared.
func (c *Config) Validate() error {
	if c.initial == "" {
		return &ErrConfig{Reason: "initial state is empty"}
	}

	if !c.states.Contains(c.initial) {
		return &ErrConfig{Reason: fmt.Sprintf("initial state %q is not declared", c.initial)}
	}

	return nil
}

func (c *Config) sortedEvents(state State) g.Slice[Event] {
	var events g.Slice[Event]
	for event := range c.states[state] {
		events.Push(event)
	}

	events.SortBy(cmp.Cmp)

	return events
}

// clone returns a deep copy so that a running machine never observes later builder calls.
func (c *Config) clone() *Config {
	out := NewConfig(c.initial)
	for state := range c.order.Iter() {
		out.State(state, c.states[state])
	}

	return out
}
