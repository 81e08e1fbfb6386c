// Package engine implements the chess rules: pseudo-legal move geometry,
// castling candidates, the king-safety legality filter, move execution, and
// the position classifier. It operates on the data model in internal/chess.
package engine

import "github.com/mathisdelsart/chess-engine/internal/chess"

// Direction tables for the sliding pieces and the fixed-offset movers.
var (
	rookDirections   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirections = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = [][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	knightOffsets = [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// PseudoMoves computes the piece's pseudo-legal destinations: movement
// geometry and occupancy only, ignoring whether the move exposes the mover's
// own king. Castling candidates are not included here; the legality filter
// adds them for the defender's king.
func PseudoMoves(s *chess.GameState, p *chess.Piece) []chess.Tile {
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(s, p)
	case chess.Knight:
		return offsetMoves(s, p, knightOffsets)
	case chess.Bishop:
		return slidingMoves(s, p, bishopDirections)
	case chess.Rook:
		return slidingMoves(s, p, rookDirections)
	case chess.Queen:
		return slidingMoves(s, p, queenDirections)
	case chess.King:
		return offsetMoves(s, p, kingOffsets)
	}
	return nil
}

// slidingMoves walks each direction one square at a time: empty squares
// extend the ray, an enemy square ends it with a capture, an own square ends
// it without one.
func slidingMoves(s *chess.GameState, p *chess.Piece, directions [][2]int) []chess.Tile {
	var moves []chess.Tile
	for _, d := range directions {
		for to := p.Tile.Offset(d[0], d[1]); to.InBounds(); to = to.Offset(d[0], d[1]) {
			target := s.PieceAt(to)
			if target == nil {
				moves = append(moves, to)
				continue
			}
			if target.Colour != p.Colour {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// offsetMoves applies a fixed offset table (knight jumps, king steps); a
// destination is pseudo-legal when in bounds and not blocked by an own piece.
func offsetMoves(s *chess.GameState, p *chess.Piece, offsets [][2]int) []chess.Tile {
	var moves []chess.Tile
	for _, o := range offsets {
		to := p.Tile.Offset(o[0], o[1])
		if !to.InBounds() {
			continue
		}
		if target := s.PieceAt(to); target == nil || target.Colour != p.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnMoves computes pushes, diagonal captures, and en passant. The double
// push requires an unmoved pawn and both squares ahead empty.
func pawnMoves(s *chess.GameState, p *chess.Piece) []chess.Tile {
	var moves []chess.Tile
	dir := p.Colour.Forward()

	one := p.Tile.Offset(dir, 0)
	if one.InBounds() && s.PieceAt(one) == nil {
		moves = append(moves, one)
		if !p.Moved {
			two := p.Tile.Offset(2*dir, 0)
			if two.InBounds() && s.PieceAt(two) == nil {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := p.Tile.Offset(dir, dc)
		if !diag.InBounds() {
			continue
		}
		if target := s.PieceAt(diag); target != nil && target.Colour != p.Colour {
			moves = append(moves, diag)
		}
		// En passant: an enemy pawn alongside that advanced two squares on
		// the previous ply can be captured on the square it passed over.
		beside := s.PieceAt(p.Tile.Offset(0, dc))
		if beside != nil && beside.Kind == chess.Pawn &&
			beside.Colour != p.Colour && beside.JustDoubleMoved {
			moves = append(moves, diag)
		}
	}
	return moves
}
