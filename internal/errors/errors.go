// Package errors provides sentinel errors and error types for mailbox-attack.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square outside the real board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidColour indicates a colour other than White or Black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidPiece indicates a value that is not a coloured piece.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrOccupied indicates a piece was placed on an occupied square.
	ErrOccupied = errors.New("square already occupied")

	// ErrBoardFull indicates a colour's bounded piece list has no free slot.
	ErrBoardFull = errors.New("piece list full")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with the context of an input position: the
// source file, the 1-based line and the FEN text being processed.
type PositionError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
	Line int    // Line number in source (0 if not applicable)
	FEN  string // The FEN text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err == nil {
		if context == "" {
			return "position error"
		}
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
