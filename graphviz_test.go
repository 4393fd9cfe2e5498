package fsm_test

import (
	"strings"
	"testing"

	. "github.com/enetx/histfsm"
)

func TestFSM_ToDOT(t *testing.T) {
	f := MustNew(chainConfig().Transition("c", "lost", "void"))
	assertNoError(t, f.Trigger("next"))
	assertTrue(t, f.Undo())

	dot := string(f.ToDOT())

	tests := []string{
		`__start -> "a" [label=" initial"];`,
		`"a" [label="a", fillcolor="#90ee90", shape=doublecircle];`,
		`"b" [label="b", color="#1e90ff", penwidth=2];`,
		`"d" [label="d", fillcolor="#d3d3d3", shape=doublecircle];`,
		`"a" -> "b" [label=" next "];`,
		`"b" -> "c" [label=" next "];`,
		`"c" -> "void" [label=" lost ", style=dashed, color=red];`,
	}

	for _, want := range tests {
		if !strings.Contains(dot, want) {
			t.Errorf("expected DOT output to contain %q\n%s", want, dot)
		}
	}
}

func TestFSM_ToDOTGroupsEdges(t *testing.T) {
	f := MustNew(NewConfig("a").State("a", Transitions{"x": "b", "y": "b"}).State("b", nil))

	dot := string(f.ToDOT())
	if !strings.Contains(dot, `"a" -> "b" [label=" x\ny "];`) {
		t.Errorf("expected grouped edge label\n%s", dot)
	}
}

func TestFSM_ToMermaid(t *testing.T) {
	f := MustNew(NewConfig("idle").
		State("idle", Transitions{"start": "running"}).
		State("running", Transitions{"stop": "idle", "fail": "in-error"}))
	assertNoError(t, f.Trigger("start"))

	out := string(f.ToMermaid())

	tests := []string{
		"graph LR\n",
		`idle(("idle"))`,
		`running["running"]`,
		`idle -->|"start"| running`,
		`running -->|"stop"| idle`,
		`running -.->|"fail"| in_error`,
		"class running current",
	}

	for _, want := range tests {
		if !strings.Contains(out, want) {
			t.Errorf("expected Mermaid output to contain %q\n%s", want, out)
		}
	}
}
