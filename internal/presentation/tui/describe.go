package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta/pkg/machine"
)

// DescribeMarkdown builds a markdown summary of a compiled table, meant to
// be rendered with NewRenderer.
func DescribeMarkdown(table *machine.Table, maxSteps int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", table.Name())
	fmt.Fprintf(&sb, "Deterministic single-tape machine, kind `%s`.\n\n", table.Kind())
	fmt.Fprintf(&sb, "- Fingerprint: `%s`\n", table.Fingerprint()[:12])
	fmt.Fprintf(&sb, "- Initial state: `%s`, final state: `%s`\n", table.Initial(), table.Final())
	fmt.Fprintf(&sb, "- States: %d\n", len(table.States()))
	fmt.Fprintf(&sb, "- Input alphabet: %s\n", symbolList(table.Alphabet()))
	fmt.Fprintf(&sb, "- Tape alphabet: %s\n", symbolList(table.TapeAlphabet()))
	fmt.Fprintf(&sb, "- Step bound: %d\n\n", maxSteps)

	sb.WriteString("| State | Read | Next | Write | Move |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range table.Rules() {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			r.When.State, r.When.Symbol, r.Then.Next, r.Then.Write, r.Then.Move)
	}

	return sb.String()
}

func symbolList(symbols []machine.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = "`" + string(s) + "`"
	}
	return strings.Join(parts, " ")
}
