package engine

import (
	"github.com/mathisdelsart/chess-engine/internal/chess"
	errs "github.com/mathisdelsart/chess-engine/internal/errors"
)

// Outcome classifies the position facing the side about to move.
type Outcome int

const (
	Continuing Outcome = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	names := []string{"continuing", "check", "checkmate", "stalemate"}
	if int(o) < len(names) {
		return names[o]
	}
	return "unknown"
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Checkmate || o == Stalemate
}

// UpdateLegalMoves rebuilds the legal-move cache of every piece of the
// defending colour and classifies the position. It runs once per half-move,
// on the side that did not just move.
//
// Each piece's pseudo-legal destinations are filtered through a simulated
// move on the shared GameState: a destination survives only if the defender's
// king is not attacked in the hypothetical position. King safety is the sole
// criterion, so pins, discovered checks, and capture-the-checker cases all
// fall out of the same test. Under double check the non-king pieces are
// cleared without simulation.
func UpdateLegalMoves(s *chess.GameState, defender chess.Colour) (Outcome, error) {
	king := s.King(defender)
	if king == nil || s.King(defender.Other()) == nil {
		return Continuing, errs.Wrap(errs.ErrInvariant, "king reference missing")
	}

	inCheck := kingAttacked(s, defender)
	doubleCheck := inCheck && countCheckers(s, defender) > 1

	hasMove := false
	for _, p := range s.Pieces(defender) {
		if doubleCheck && p != king {
			p.Moves = nil
			continue
		}
		pseudo := PseudoMoves(s, p)
		if p == king {
			pseudo = append(pseudo, castlingCandidates(s, p)...)
		}
		p.Moves = filterKingSafe(s, p, pseudo)
		if len(p.Moves) > 0 {
			hasMove = true
		}
	}

	switch {
	case inCheck && !hasMove:
		return Checkmate, nil
	case inCheck:
		return Check, nil
	case !hasMove:
		return Stalemate, nil
	default:
		return Continuing, nil
	}
}

// filterKingSafe keeps the destinations that do not leave the mover's own
// king attacked afterwards.
func filterKingSafe(s *chess.GameState, p *chess.Piece, candidates []chess.Tile) []chess.Tile {
	var legal []chess.Tile
	for _, to := range candidates {
		if !leavesKingAttacked(s, p, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// leavesKingAttacked simulates moving p to the destination and reports
// whether p's own king would then be attacked. Only the board grid and the
// piece's tile are mutated, and both are restored on every path, so the
// GameState is bit-for-bit identical afterwards: a staged capture leaves the
// victim's registry entry alone and the attack scan skips it by noticing its
// square no longer holds it.
func leavesKingAttacked(s *chess.GameState, p *chess.Piece, to chess.Tile) bool {
	from := p.Tile
	captured := s.PieceAt(to)

	s.SetPiece(from, nil)
	s.SetPiece(to, p)
	p.Tile = to

	attacked := kingAttacked(s, p.Colour)

	p.Tile = from
	s.SetPiece(to, captured)
	s.SetPiece(from, p)

	return attacked
}
