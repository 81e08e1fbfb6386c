package chess

// Piece is a single chess piece. All six kinds share one struct with a Kind
// tag; kind-specific state lives in the extra fields below rather than in a
// type hierarchy.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	Tile   Tile

	// Moved is set once the piece leaves its starting square. It gates pawn
	// double pushes and castling eligibility.
	Moved bool

	// Moves is the legal-move cache, rebuilt every ply by the legality
	// filter. Order is stable within a single classification pass.
	Moves []Tile

	// JustDoubleMoved is pawn-only state: true for exactly the one ply
	// following a two-square advance, the en passant capture window.
	JustDoubleMoved bool

	// RookQueenside and RookKingside are king-only, non-owning references to
	// the home rooks, wired once at setup. They are used solely to test
	// castling eligibility.
	RookQueenside *Piece
	RookKingside  *Piece
}

// NewPiece returns a piece of the given kind and colour on the tile, with all
// flags cleared.
func NewPiece(kind PieceKind, colour Colour, tile Tile) *Piece {
	return &Piece{Kind: kind, Colour: colour, Tile: tile}
}

// CanMoveTo reports whether the destination is in the piece's current
// legal-move cache.
func (p *Piece) CanMoveTo(to Tile) bool {
	for _, m := range p.Moves {
		if m == to {
			return true
		}
	}
	return false
}
