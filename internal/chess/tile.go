package chess

import "fmt"

// Tile is a board coordinate pair. Row 0 is Black's back rank, row 7 is
// White's. Tile is a value type with no ownership semantics.
type Tile struct {
	Row int
	Col int
}

// InBounds reports whether the tile lies on the 8x8 board.
func (t Tile) InBounds() bool {
	return t.Row >= 0 && t.Row <= 7 && t.Col >= 0 && t.Col <= 7
}

// Offset returns the tile shifted by the given row and column deltas.
func (t Tile) Offset(dr, dc int) Tile {
	return Tile{Row: t.Row + dr, Col: t.Col + dc}
}

// String returns the tile as "(row,col)".
func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.Row, t.Col)
}
