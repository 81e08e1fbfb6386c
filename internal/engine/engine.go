package engine

import (
	"github.com/mathisdelsart/chess-engine/internal/chess"
	errs "github.com/mathisdelsart/chess-engine/internal/errors"
)

// Result combines what the executor did with how the legality filter
// classified the resulting position, so a front end can distinguish, say, a
// capture that also delivers check.
type Result struct {
	Move    MoveKind
	Outcome Outcome
}

// NewGame returns the standard initial position with White's legal moves
// already computed.
func NewGame() *chess.GameState {
	s := chess.NewGameState()
	s.SetupInitialPosition()
	if _, err := UpdateLegalMoves(s, chess.White); err != nil {
		// Both kings were just placed; a failure here is an engine defect.
		panic(err)
	}
	return s
}

// LegalMovesFor returns a copy of the cached legal-move set for the piece on
// the tile. The result is empty when the tile is out of bounds, empty, or
// holds a piece of the side that just moved (whose cache is cleared until its
// next turn).
func LegalMovesFor(s *chess.GameState, t chess.Tile) []chess.Tile {
	p := s.PieceAt(t)
	if p == nil {
		return nil
	}
	return append([]chess.Tile(nil), p.Moves...)
}

// ApplyMove validates and applies one half-move. The destination must be a
// member of the legal-move cache of the piece at from; on any validation
// failure the state is left byte-for-byte unchanged. On success the state is
// mutated in place, the defender's legal moves are recomputed, and the
// combined result is returned.
//
// The core is turn-agnostic: enforcing turn order is the caller's concern.
func ApplyMove(s *chess.GameState, from, to chess.Tile) (Result, error) {
	if !from.InBounds() || !to.InBounds() {
		return Result{}, &errs.MoveError{From: from.String(), To: to.String(), Err: errs.ErrInvalidTile}
	}
	p := s.PieceAt(from)
	if p == nil {
		return Result{}, &errs.MoveError{From: from.String(), To: to.String(), Err: errs.ErrNoPieceAtSource}
	}
	if !p.CanMoveTo(to) {
		return Result{}, &errs.MoveError{From: from.String(), To: to.String(), Err: errs.ErrIllegalMove}
	}

	mover := p.Colour
	kind := ExecuteMove(s, p, to)

	// The mover's caches are stale until its next turn.
	for _, q := range s.Pieces(mover) {
		q.Moves = nil
	}

	outcome, err := UpdateLegalMoves(s, mover.Other())
	if err != nil {
		return Result{}, err
	}
	return Result{Move: kind, Outcome: outcome}, nil
}
