package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidColour", ErrInvalidColour, ErrInvalidColour},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrOccupied", ErrOccupied, ErrOccupied},
		{"ErrBoardFull", ErrBoardFull, ErrBoardFull},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// Sentinels must stay distinct or errors.Is checks become meaningless.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrInvalidFEN, ErrInvalidSquare, ErrInvalidColour, ErrInvalidPiece, ErrOccupied, ErrBoardFull, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:  ErrInvalidFEN,
				File: "positions.fen",
				Line: 42,
				FEN:  "8/8/9 w",
			},
			contains: []string{"positions.fen:42", "8/8/9 w", "invalid FEN"},
		},
		{
			name: "line only",
			err: &PositionError{
				Err:  ErrInvalidSquare,
				Line: 7,
			},
			contains: []string{"line 7", "invalid square"},
		},
		{
			name:     "no context",
			err:      &PositionError{Err: ErrBoardFull},
			contains: []string{"piece list full"},
		},
		{
			name:     "no error",
			err:      &PositionError{},
			contains: []string{"position error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_Unwrap(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrInvalidFEN,
		File: "test.fen",
	}

	unwrapped := errors.Unwrap(posErr)
	if !errors.Is(unwrapped, ErrInvalidFEN) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidFEN)
	}

	if !errors.Is(posErr, ErrInvalidFEN) {
		t.Error("errors.Is(posErr, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrOccupied,
		Line: 3,
		FEN:  "KK6/8/8/8/8/8/8/8 w",
	}

	wrapped := fmt.Errorf("probe failed: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Line != 3 {
		t.Errorf("extracted.Line = %d, want 3", extracted.Line)
	}
	if !errors.Is(wrapped, ErrOccupied) {
		t.Error("errors.Is(wrapped, ErrOccupied) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidSquare, "square %d on line %d", 300, 3)

	if !errors.Is(wrapped, ErrInvalidSquare) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "square 300") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
	if Wrapf(nil, "%d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
