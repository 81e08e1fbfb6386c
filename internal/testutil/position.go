package testutil

import (
	"testing"

	"github.com/mathisdelsart/chess-engine/internal/chess"
)

// Placement describes one piece for Position.
type Placement struct {
	Kind   chess.PieceKind
	Colour chess.Colour
	Tile   chess.Tile
	Moved  bool
}

// Position builds a GameState holding exactly the given pieces. A king that
// sits unmoved on its home square gets its rook references wired to any own
// unmoved rook still on a home corner, so castling can be exercised from
// sparse positions.
func Position(t *testing.T, placements ...Placement) *chess.GameState {
	t.Helper()
	s := chess.NewGameState()
	for _, pl := range placements {
		if !pl.Tile.InBounds() {
			t.Fatalf("placement %v %v on out-of-bounds tile %v", pl.Colour, pl.Kind, pl.Tile)
		}
		if s.PieceAt(pl.Tile) != nil {
			t.Fatalf("two placements on tile %v", pl.Tile)
		}
		p := chess.NewPiece(pl.Kind, pl.Colour, pl.Tile)
		p.Moved = pl.Moved
		s.Place(p)
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		king := s.King(c)
		if king == nil || king.Moved {
			continue
		}
		back := c.BackRank()
		if (king.Tile != chess.Tile{Row: back, Col: 4}) {
			continue
		}
		if r := s.PieceAt(chess.Tile{Row: back, Col: 0}); r != nil && r.Kind == chess.Rook && r.Colour == c && !r.Moved {
			king.RookQueenside = r
		}
		if r := s.PieceAt(chess.Tile{Row: back, Col: 7}); r != nil && r.Kind == chess.Rook && r.Colour == c && !r.Moved {
			king.RookKingside = r
		}
	}
	return s
}

// Kings is a convenience pair of king placements on the home squares, for
// positions where the kings only need to exist somewhere safe.
func Kings() []Placement {
	return []Placement{
		{Kind: chess.King, Colour: chess.White, Tile: chess.Tile{Row: 7, Col: 4}},
		{Kind: chess.King, Colour: chess.Black, Tile: chess.Tile{Row: 0, Col: 4}},
	}
}
