package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta/pkg/machine"
)

// GenerateDOT produces a Graphviz digraph for rendering with the dot engine.
// The initial state is drawn as a green double circle, the final state as a
// blue one, and every edge is labeled "read → write (move)".
func GenerateDOT(table *machine.Table) string {
	var sb strings.Builder
	sb.WriteString("digraph machine {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    bgcolor=white;\n")
	sb.WriteString(fmt.Sprintf("    label=%q;\n", table.Name()))
	sb.WriteString("    fontname=\"Arial\";\n")
	sb.WriteString("    fontsize=10;\n")
	sb.WriteString("    node [shape=circle, style=filled, fontname=\"Arial\", fontsize=10];\n")
	sb.WriteString("    edge [fontname=\"Courier\", fontsize=8];\n\n")

	for _, s := range table.States() {
		switch {
		case s == table.Initial():
			sb.WriteString(fmt.Sprintf("    %q [shape=doublecircle, fillcolor=lightgreen, color=green];\n", s))
		case table.IsFinal(s):
			sb.WriteString(fmt.Sprintf("    %q [shape=doublecircle, fillcolor=lightblue, color=blue];\n", s))
		default:
			sb.WriteString(fmt.Sprintf("    %q [fillcolor=lightgray, color=gray];\n", s))
		}
	}
	sb.WriteString("\n")

	for _, rule := range table.Rules() {
		sb.WriteString(fmt.Sprintf("    %q -> %q [label=\"%s → %s (%s)\", color=purple];\n",
			rule.When.State,
			rule.Then.Next,
			rule.When.Symbol,
			rule.Then.Write,
			rule.Then.Move,
		))
	}

	sb.WriteString("}\n")
	return sb.String()
}
