package machine

import "fmt"

// Move is the head displacement applied after a transition writes its symbol.
type Move string

const (
	// MoveLeft shifts the head one cell towards lower positions.
	MoveLeft Move = "L"
	// MoveRight shifts the head one cell towards higher positions.
	MoveRight Move = "R"
)

// ParseMove converts a raw direction token into a Move.
// Only "L" and "R" are accepted; the machine has no stay move.
func ParseMove(raw string) (Move, error) {
	switch Move(raw) {
	case MoveLeft:
		return MoveLeft, nil
	case MoveRight:
		return MoveRight, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMove, raw, MoveLeft, MoveRight)
	}
}

// Delta returns the signed head offset for the move (-1 or +1).
func (m Move) Delta() int {
	if m == MoveLeft {
		return -1
	}
	return 1
}

func (m Move) String() string { return string(m) }
