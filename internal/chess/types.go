// Package chess provides the board, piece, and game-state data model for the
// rules engine. It holds placement and ownership only; movement geometry and
// legality live in the engine package.
package chess

// Colour identifies a side. It doubles as the pawn advance convention:
// White pawns move toward row 0, Black pawns toward row 7.
type Colour int8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Other returns the opposing colour.
func (c Colour) Other() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance for the colour.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRank returns the row on which the colour's pieces start.
func (c Colour) BackRank() int {
	if c == White {
		return 7
	}
	return 0
}

// LastRank returns the row a pawn of the colour must reach to promote.
func (c Colour) LastRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind identifies one of the six piece kinds.
type PieceKind int8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}
