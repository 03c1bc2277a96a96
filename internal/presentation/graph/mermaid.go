package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta/pkg/machine"
)

// Overlay contains dynamic run data to visualize on the diagram.
type Overlay struct {
	VisitedStates []machine.State
	CurrentState  machine.State
}

// GenerateMermaid produces a Mermaid state diagram from a compiled table.
// Every transition edge carries a "read / write, move" label. Composite
// states whose names hold cache brackets are aliased to safe identifiers.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(table *machine.Table, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	// Alias states whose raw names Mermaid cannot use as identifiers.
	for _, s := range table.States() {
		safeID := sanitizeMermaidID(string(s))
		if safeID != string(s) {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", s, safeID))
		}
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(string(table.Initial()))))

	for _, rule := range table.Rules() {
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s / %s, %s\n",
			sanitizeMermaidID(string(rule.When.State)),
			sanitizeMermaidID(string(rule.Then.Next)),
			rule.When.Symbol,
			rule.Then.Write,
			rule.Then.Move,
		))
	}

	sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeMermaidID(string(table.Final()))))

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// color:#000 keeps labels legible on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(s))
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			safeCurrent := sanitizeMermaidID(string(overlay.CurrentState))
			sb.WriteString(fmt.Sprintf("    class %s current;\n", safeCurrent))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, "[", "_")
	s = strings.ReplaceAll(s, "]", "")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
