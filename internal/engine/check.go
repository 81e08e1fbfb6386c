package engine

import "github.com/mathisdelsart/chess-engine/internal/chess"

// anyAttacked reports whether any of the tiles appears in the pseudo-legal
// move set of a piece of the given colour. Attacker geometry is recomputed on
// the spot; a piece whose registered tile no longer holds it is skipped, so
// the test stays valid mid-simulation when a capture has been staged on the
// board grid without touching the registries.
func anyAttacked(s *chess.GameState, by chess.Colour, tiles ...chess.Tile) bool {
	for _, p := range s.Pieces(by) {
		if s.PieceAt(p.Tile) != p {
			continue
		}
		for _, m := range PseudoMoves(s, p) {
			for _, t := range tiles {
				if m == t {
					return true
				}
			}
		}
	}
	return false
}

// kingAttacked reports whether the colour's king is currently attacked.
// The caller must have verified that the king reference exists.
func kingAttacked(s *chess.GameState, c chess.Colour) bool {
	return anyAttacked(s, c.Other(), s.King(c).Tile)
}

// countCheckers counts the enemy pieces whose pseudo-legal moves reach the
// defender's king. A count above one is a double check: no piece but the
// king itself can resolve it.
func countCheckers(s *chess.GameState, defender chess.Colour) int {
	kingTile := s.King(defender).Tile
	n := 0
	for _, p := range s.Pieces(defender.Other()) {
		for _, m := range PseudoMoves(s, p) {
			if m == kingTile {
				n++
				break
			}
		}
	}
	return n
}
