package graph

import (
	"fmt"

	"github.com/aretw0/cinta/pkg/machine"
)

// Format identifies a diagram dialect.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
)

// Generate renders the table in the requested format.
// An empty format defaults to Mermaid.
func Generate(table *machine.Table, format Format) (string, error) {
	switch format {
	case FormatMermaid, "":
		return GenerateMermaid(table, nil), nil
	case FormatDOT:
		return GenerateDOT(table), nil
	default:
		return "", fmt.Errorf("unknown diagram format %q", format)
	}
}
