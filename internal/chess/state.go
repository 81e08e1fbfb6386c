package chess

// GameState owns the board grid, the two per-colour piece registries, and the
// two king references. It is the unit of simulation: the legality filter
// mutates it in place and restores it before anyone else observes it.
//
// Invariant: every occupied board cell holds a piece whose Tile equals the
// cell coordinates, and every such piece appears in exactly one registry.
type GameState struct {
	board  [8][8]*Piece
	pieces [2][]*Piece
	kings  [2]*Piece
}

// NewGameState returns an empty state with no pieces placed.
func NewGameState() *GameState {
	return &GameState{}
}

// PieceAt returns the piece on the tile, or nil when the tile is empty or
// outside the board.
func (s *GameState) PieceAt(t Tile) *Piece {
	if !t.InBounds() {
		return nil
	}
	return s.board[t.Row][t.Col]
}

// SetPiece writes the cell for the tile; p may be nil to vacate it.
// Out-of-bounds tiles are ignored.
func (s *GameState) SetPiece(t Tile, p *Piece) {
	if !t.InBounds() {
		return
	}
	s.board[t.Row][t.Col] = p
}

// Add registers the piece in its colour registry. Adding a piece that is
// already registered is a no-op.
func (s *GameState) Add(p *Piece) {
	if p == nil {
		return
	}
	for _, q := range s.pieces[p.Colour] {
		if q == p {
			return
		}
	}
	s.pieces[p.Colour] = append(s.pieces[p.Colour], p)
}

// Remove drops the piece from its colour registry, preserving the order of
// the remaining pieces. Removing an absent piece is a no-op.
func (s *GameState) Remove(p *Piece) {
	if p == nil {
		return
	}
	reg := s.pieces[p.Colour]
	for i, q := range reg {
		if q == p {
			s.pieces[p.Colour] = append(reg[:i], reg[i+1:]...)
			return
		}
	}
}

// Pieces returns the registry for a colour. The slice is shared, not copied;
// callers must not append to it. Iteration order is insertion order and stays
// stable across a classification pass.
func (s *GameState) Pieces(c Colour) []*Piece {
	return s.pieces[c]
}

// King returns the colour's king reference, or nil before setup.
func (s *GameState) King(c Colour) *Piece {
	return s.kings[c]
}

// Place puts a piece on the board and registers it. Placing a king also
// records the king reference for its colour.
func (s *GameState) Place(p *Piece) {
	s.SetPiece(p.Tile, p)
	s.Add(p)
	if p.Kind == King {
		s.kings[p.Colour] = p
	}
}

// SetupInitialPosition arranges the standard 32-piece starting position:
// Black on rows 0 and 1, White on rows 6 and 7, all flags cleared, and each
// king's rook references wired for castling. Any previous contents are
// discarded.
func (s *GameState) SetupInitialPosition() {
	*s = GameState{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, c := range []Colour{Black, White} {
		back := c.BackRank()
		pawnRow := back + c.Forward()
		for col, kind := range backRank {
			s.Place(NewPiece(kind, c, Tile{Row: back, Col: col}))
		}
		for col := 0; col < 8; col++ {
			s.Place(NewPiece(Pawn, c, Tile{Row: pawnRow, Col: col}))
		}
		king := s.kings[c]
		king.RookQueenside = s.PieceAt(Tile{Row: back, Col: 0})
		king.RookKingside = s.PieceAt(Tile{Row: back, Col: 7})
	}
}
