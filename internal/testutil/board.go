package testutil

import (
	"testing"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
)

// MustSquare parses an algebraic square name such as "e4".
// It calls t.Fatal if the name is not a real square.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square name %q", name)
	}
	return sq
}

// MustBoard builds a board with the given pieces keyed by square name.
// It calls t.Fatal if any placement is rejected.
func MustBoard(t testing.TB, placements map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, p := range placements {
		if err := b.Put(MustSquare(t, name), p); err != nil {
			t.Fatalf("placing %v on %s: %v", p, name, err)
		}
	}
	return b
}
