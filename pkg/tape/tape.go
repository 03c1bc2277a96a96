// Package tape implements the unbounded working memory of a single run.
//
// The tape is sparse: only cells that hold a non-blank symbol are stored, so
// memory grows with the written region instead of with head travel. Cell
// positions are signed; the input is loaded at positions 0..n-1 and the head
// may move freely below zero.
package tape

import (
	"strings"

	"github.com/aretw0/cinta/pkg/machine"
)

// Tape is the mutable cell store of one run. It is owned exclusively by that
// run and must not be shared across goroutines.
type Tape struct {
	cells map[int]machine.Symbol
}

// New returns an empty tape. Every cell reads as the blank symbol.
func New() *Tape {
	return &Tape{cells: make(map[int]machine.Symbol)}
}

// Load returns a tape initialized with the input word at positions 0..n-1.
// Blank symbols in the input are skipped, preserving the sparse invariant.
func Load(input []machine.Symbol) *Tape {
	t := &Tape{cells: make(map[int]machine.Symbol, len(input))}
	for i, sym := range input {
		if !sym.IsBlank() {
			t.cells[i] = sym
		}
	}
	return t
}

// Read returns the symbol at pos. Unwritten cells read as blank.
func (t *Tape) Read(pos int) machine.Symbol {
	if sym, ok := t.cells[pos]; ok {
		return sym
	}
	return machine.Blank
}

// Write stores sym at pos. Writing the blank symbol erases the cell, so the
// map never accumulates explicit blanks.
func (t *Tape) Write(pos int, sym machine.Symbol) {
	if sym.IsBlank() {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = sym
}

// Len returns the number of non-blank cells.
func (t *Tape) Len() int { return len(t.cells) }

// Extent returns the positions of the leftmost and rightmost non-blank
// cells. ok is false when the tape is entirely blank.
func (t *Tape) Extent() (lo, hi int, ok bool) {
	first := true
	for pos := range t.cells {
		if first {
			lo, hi, first = pos, pos, false
			continue
		}
		if pos < lo {
			lo = pos
		}
		if pos > hi {
			hi = pos
		}
	}
	return lo, hi, !first
}

// Snapshot renders the written region as a string, trimmed of surrounding
// blanks. Interior blanks between written cells are rendered explicitly. An
// all-blank tape yields the empty string.
func (t *Tape) Snapshot() string {
	lo, hi, ok := t.Extent()
	if !ok {
		return ""
	}
	return t.Window(lo, hi)
}

// Window renders the inclusive cell range [lo, hi] as a string, including
// blanks. Used by step traces to show the neighborhood of the head.
func (t *Tape) Window(lo, hi int) string {
	if hi < lo {
		return ""
	}
	var b strings.Builder
	for pos := lo; pos <= hi; pos++ {
		b.WriteString(string(t.Read(pos)))
	}
	return b.String()
}
