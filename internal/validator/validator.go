package validator

import (
	"fmt"

	"github.com/aretw0/cinta/pkg/machine"
)

// Lint checks a compiled table for constructs that are legal but almost
// certainly mistakes: states no run can reach, an unreachable accepting
// state, and transitions out of the accepting state. It returns one
// human-readable warning per finding, in deterministic order.
func Lint(table *machine.Table) []string {
	var warnings []string

	reachable := reachableStates(table)

	for _, s := range table.States() {
		if _, ok := reachable[s]; ok {
			continue
		}
		if table.IsFinal(s) {
			warnings = append(warnings, fmt.Sprintf("accepting state %q is unreachable, so no input can be accepted", s))
			continue
		}
		warnings = append(warnings, fmt.Sprintf("state %q is unreachable from %q", s, table.Initial()))
	}

	for _, r := range table.Rules() {
		if table.IsFinal(r.When.State) {
			warnings = append(warnings, fmt.Sprintf("rule %s can never fire: acceptance is checked before the transition lookup", r.When))
		}
	}

	return warnings
}

// reachableStates crawls the transition graph from the initial state.
// Edges out of the accepting state are ignored because the run halts there
// before any lookup happens.
func reachableStates(table *machine.Table) map[machine.State]struct{} {
	next := make(map[machine.State][]machine.State)
	for _, r := range table.Rules() {
		if table.IsFinal(r.When.State) {
			continue
		}
		next[r.When.State] = append(next[r.When.State], r.Then.Next)
	}

	visited := make(map[machine.State]struct{})
	queue := []machine.State{table.Initial()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		for _, target := range next[current] {
			if _, ok := visited[target]; !ok {
				queue = append(queue, target)
			}
		}
	}

	return visited
}
