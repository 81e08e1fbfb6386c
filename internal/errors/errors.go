// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the engine's failure conditions and a structured
// move-rejection type that preserves context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidTile indicates a coordinate outside the 8x8 board.
	ErrInvalidTile = errors.New("tile outside the board")

	// ErrNoPieceAtSource indicates a query or move from an empty tile.
	ErrNoPieceAtSource = errors.New("no piece at source tile")

	// ErrIllegalMove indicates a destination that is not in the piece's
	// legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurnColour indicates an attempt to move a piece of the side
	// not currently to move.
	ErrWrongTurnColour = errors.New("wrong colour to move")

	// ErrInvariant indicates a broken internal invariant. It signals an
	// engine defect, not caller misuse, and must never be swallowed.
	ErrInvariant = errors.New("engine invariant violation")
)

// MoveError wraps a rejected move with the tiles involved. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	From string // source tile, as printed by chess.Tile
	To   string // destination tile
	Err  error  // the underlying sentinel
}

// Error returns a formatted message including both tiles.
func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s->%s: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
