package config

import (
	"fmt"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

// QueryConfig selects an optional single-square attack query made against
// every position.
type QueryConfig struct {
	Enabled bool
	Square  chess.Square
	By      chess.Colour
}

// NewQueryConfig creates a QueryConfig with no query selected.
func NewQueryConfig() *QueryConfig {
	return &QueryConfig{Square: chess.SquareNone, By: chess.White}
}

// Set parses a square name such as "e4" and a colour name ("white",
// "black", "w" or "b") and enables the query.
func (q *QueryConfig) Set(square, by string) error {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return fmt.Errorf("query square %q: %w", square, errors.ErrInvalidConfig)
	}
	colour, err := ParseColour(by)
	if err != nil {
		return err
	}
	q.Enabled = true
	q.Square = sq
	q.By = colour
	return nil
}

// Validate checks that an enabled query names a real square and colour.
func (q *QueryConfig) Validate() error {
	if !q.Enabled {
		return nil
	}
	if !chess.SquareIsOK(q.Square) {
		return fmt.Errorf("query square %d: %w", int(q.Square), errors.ErrInvalidConfig)
	}
	if !q.By.IsOK() {
		return fmt.Errorf("query colour %d: %w", int(q.By), errors.ErrInvalidConfig)
	}
	return nil
}

// ParseColour converts a colour name to a chess.Colour.
func ParseColour(s string) (chess.Colour, error) {
	switch s {
	case "w", "white", "White":
		return chess.White, nil
	case "b", "black", "Black":
		return chess.Black, nil
	}
	return chess.ColourNb, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}
