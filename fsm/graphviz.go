package fsm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/enetx/g"
)

// ToDOT generates a DOT language string representation of the FSM for visualization.
// Edges are labelled with the hooks they carry.
func (f *FSM[T]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	outgoing := g.NewSet[T]()
	for key := range f.transitions {
		outgoing.Insert(key.From)
	}

	states := f.States()
	slices.SortFunc(states, func(a, b T) int { return strings.Compare(label(a), label(b)) })

	for _, state := range states {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", label(state)))

		switch {
		case state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", label(state), attrs.Join(", ")))
	}

	b.WriteString("\n")

	edges := f.Transitions()
	slices.SortFunc(edges, func(a, b Transition[T]) int {
		if c := strings.Compare(label(a.From), label(b.From)); c != 0 {
			return c
		}
		return strings.Compare(label(a.To), label(b.To))
	})

	for _, edge := range edges {
		h := f.transitions[edge]

		var labels g.Slice[g.String]
		if h.before != nil {
			labels.Push("before")
		}

		if h.announce != nil {
			labels.Push("announce")
		}

		if h.after != nil {
			labels.Push("after")
		}

		if labels.Empty() {
			b.WriteString(g.Format("  \"{}\" -> \"{}\";\n", label(edge.From), label(edge.To)))
			continue
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n",
			label(edge.From), label(edge.To), labels.Join("\\n")))
	}

	b.WriteString("}\n")

	return b.String()
}

func label[T any](v T) string { return fmt.Sprint(v) }
