package fsm

import (
	"strings"

	"github.com/enetx/g"
)

// ToDOT generates a DOT language string representation of the FSM for visualization.
func (f *FSM) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.initial))

	for state := range f.cfg.order.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case len(f.cfg.states[state]) == 0:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		if f.undo.Contains(state) {
			attrs.Push("color=\"#1e90ff\"", "penwidth=2")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for _, e := range f.edges() {
		var edge g.Slice[g.String]
		edge.Push(g.Format("label=\" {} \"", e.labels.Join("\\n")))

		if !f.cfg.Has(e.to) {
			edge.Push("style=dashed", "color=red")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", e.from, e.to, edge.Join(", ")))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Final state</td></tr>
        <tr><td align="right"><font color="blue">●</font></td><td>Redo available</td></tr>
        <tr><td align="right"><font color="red">→</font></td><td>Undeclared target</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

// ToMermaid generates a Mermaid flowchart of the FSM. The initial state is drawn as a
// circle and the current state is highlighted.
func (f *FSM) ToMermaid() g.String {
	b := g.NewBuilder()

	b.WriteString("graph LR\n")

	for state := range f.cfg.order.Iter() {
		id := mermaidID(state)

		opener, closer := "[", "]"
		if state == f.initial {
			opener, closer = "((", "))"
		}

		b.WriteString(g.Format("    {}{}\"{}\"{}\n", id, opener, state, closer))
	}

	for _, e := range f.edges() {
		arrow := "-->"
		if !f.cfg.Has(e.to) {
			arrow = "-.->"
		}

		label := strings.ReplaceAll(string(e.labels.Join(", ")), "\"", "'")
		b.WriteString(g.Format("    {} {}|\"{}\"| {}\n", mermaidID(e.from), arrow, label, mermaidID(e.to)))
	}

	b.WriteString("    classDef current fill:#90ee90,stroke:#444444\n")
	b.WriteString(g.Format("    class {} current\n", mermaidID(f.current)))

	return b.String()
}

// edge groups all events leading from one state to another.
type edge struct {
	from, to State
	labels   g.Slice[g.String]
}

// edges returns transitions grouped per (from, to) pair in declaration order.
func (f *FSM) edges() []edge {
	var out []edge

	for from := range f.cfg.order.Iter() {
		index := map[State]int{}

		for event := range f.cfg.sortedEvents(from).Iter() {
			to := f.cfg.states[from][event]

			i, ok := index[to]
			if !ok {
				i = len(out)
				index[to] = i
				out = append(out, edge{from: from, to: to})
			}

			out[i].labels.Push(g.String(event))
		}
	}

	return out
}

// mermaidID turns a state name into a safe Mermaid node identifier.
func mermaidID(state State) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, string(state))
}
