package engine

import "github.com/mathisdelsart/chess-engine/internal/chess"

// castlingCandidates returns the legal castling destinations for the king.
// Every precondition is tested here, including the transit-square attack
// rule, so a returned destination needs no further king-safety filtering.
func castlingCandidates(s *chess.GameState, king *chess.Piece) []chess.Tile {
	if king.Moved {
		return nil
	}
	row := king.Tile.Row
	enemy := king.Colour.Other()
	var moves []chess.Tile

	// Kingside: f and g must be empty; the king's start, transit, and
	// destination squares must be unattacked.
	if rookReady(s, king.RookKingside) &&
		tilesEmpty(s, chess.Tile{Row: row, Col: 5}, chess.Tile{Row: row, Col: 6}) &&
		!anyAttacked(s, enemy, king.Tile,
			chess.Tile{Row: row, Col: 5}, chess.Tile{Row: row, Col: 6}) {
		moves = append(moves, chess.Tile{Row: row, Col: 6})
	}

	// Queenside: b, c, and d must be empty; only c and d are on the king's
	// path, so b is not attack-tested.
	if rookReady(s, king.RookQueenside) &&
		tilesEmpty(s, chess.Tile{Row: row, Col: 1},
			chess.Tile{Row: row, Col: 2}, chess.Tile{Row: row, Col: 3}) &&
		!anyAttacked(s, enemy, king.Tile,
			chess.Tile{Row: row, Col: 3}, chess.Tile{Row: row, Col: 2}) {
		moves = append(moves, chess.Tile{Row: row, Col: 2})
	}
	return moves
}

// rookReady reports whether a rook reference is still eligible for castling:
// present, never moved, and not captured off its square.
func rookReady(s *chess.GameState, rook *chess.Piece) bool {
	return rook != nil && !rook.Moved && s.PieceAt(rook.Tile) == rook
}

// tilesEmpty reports whether every given tile is vacant.
func tilesEmpty(s *chess.GameState, tiles ...chess.Tile) bool {
	for _, t := range tiles {
		if s.PieceAt(t) != nil {
			return false
		}
	}
	return true
}
