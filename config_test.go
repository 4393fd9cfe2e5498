package fsm_test

import (
	"testing"

	. "github.com/enetx/histfsm"
)

func TestConfig_StateKeepsOrder(t *testing.T) {
	cfg := NewConfig("a").
		State("c", nil).
		State("a", Transitions{"x": "c"}).
		State("b", nil).
		State("c", Transitions{"y": "a"})

	assertStates(t, cfg.States(), "c", "a", "b")

	table, ok := cfg.Transitions("c")
	assertTrue(t, ok)
	assertEqual(t, len(table), 1)
	assertEqual(t, table["y"], State("a"))
}

func TestConfig_TransitionDeclaresSource(t *testing.T) {
	cfg := NewConfig("a").
		Transition("a", "go", "b").
		Transition("a", "stay", "a")

	assertTrue(t, cfg.Has("a"))
	assertFalse(t, cfg.Has("b"))
	assertStates(t, cfg.States(), "a")
}

func TestConfig_TransitionsCopy(t *testing.T) {
	source := Transitions{"go": "b"}
	cfg := NewConfig("a").State("a", source).State("b", nil)

	source["go"] = "zzz"
	table, _ := cfg.Transitions("a")
	assertEqual(t, table["go"], State("b"))

	table["go"] = "zzz"
	table, _ = cfg.Transitions("a")
	assertEqual(t, table["go"], State("b"))

	_, ok := cfg.Transitions("missing")
	assertFalse(t, ok)
}

func TestConfig_UndeclaredTargets(t *testing.T) {
	cfg := NewConfig("a").
		State("a", Transitions{"go": "b", "fly": "sky"}).
		State("b", Transitions{"dig": "hole"})

	targets := cfg.UndeclaredTargets()
	assertEqual(t, targets.Len(), 2)
	assertEqual(t, targets[0], UndeclaredTarget{From: "a", Event: "fly", To: "sky"})
	assertEqual(t, targets[1], UndeclaredTarget{From: "b", Event: "dig", To: "hole"})
}

func TestConfig_Validate(t *testing.T) {
	assertNoError(t, NewConfig("a").State("a", nil).Validate())
	assertTrue(t, IsConfigError(NewConfig("a").Validate()))
	assertTrue(t, IsConfigError(NewConfig("").State("", nil).Validate()))
}

func TestFSM_ConfigAccessor(t *testing.T) {
	f := MustNew(toggleConfig())

	cfg := f.Config()
	cfg.Transition("idle", "crash", "running")

	assertFalse(t, f.CanTrigger("crash"))
	assertEqual(t, cfg.Initial(), State("idle"))
}
