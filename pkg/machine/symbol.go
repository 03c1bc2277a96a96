package machine

// Symbol is a single letter of the tape alphabet.
//
// Symbols are opaque identifiers compared only by equality. The engine never
// interprets their content beyond the reserved blank marker.
type Symbol string

// State is a control state identifier.
//
// Like Symbol, states are opaque and compared by equality. Definitions using
// the auxiliary cache register are flattened into composite states at load
// time, so the core engine only ever sees plain State values.
type State string

const (
	// Blank is the reserved symbol that fills every unwritten tape cell.
	// It is always part of the tape alphabet and never part of the input
	// alphabet.
	Blank Symbol = "_"
)

// IsBlank reports whether s is the reserved blank symbol.
func (s Symbol) IsBlank() bool { return s == Blank }

// ParseInput splits a raw input string into one Symbol per rune and checks
// each against the input alphabet. The empty string yields an empty slice,
// which is a valid (all-blank) input.
//
// The first out-of-alphabet rune aborts the scan with an *InputError
// wrapping ErrInvalidInputSymbol, so a rejected word is never partially run.
func ParseInput(raw string, alphabet map[Symbol]struct{}) ([]Symbol, error) {
	if raw == "" {
		return nil, nil
	}
	symbols := make([]Symbol, 0, len(raw))
	pos := 0
	for _, r := range raw {
		sym := Symbol(r)
		if _, ok := alphabet[sym]; !ok {
			return nil, &InputError{Symbol: sym, Position: pos}
		}
		symbols = append(symbols, sym)
		pos++
	}
	return symbols, nil
}
