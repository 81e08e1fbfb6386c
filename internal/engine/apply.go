package engine

import "github.com/mathisdelsart/chess-engine/internal/chess"

// MoveKind tags what the executor did with a move.
type MoveKind int

const (
	MovePlain MoveKind = iota
	MoveCapture
	MoveCastling
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"move", "capture", "castling"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ExecuteMove applies a move to the state and returns its kind tag. The
// caller guarantees the destination is a member of the piece's legal-move
// cache; no legality is re-checked here.
//
// The capture/plain classification is fixed before any mutation: an en
// passant capture therefore reports "move" (the destination square is
// empty), and a promotion keeps the classification of the pawn move that
// triggered it.
func ExecuteMove(s *chess.GameState, p *chess.Piece, to chess.Tile) MoveKind {
	from := p.Tile
	captured := s.PieceAt(to)

	kind := MovePlain
	if captured != nil {
		kind = MoveCapture
	}

	doublePush := p.Kind == chess.Pawn && abs(to.Row-from.Row) == 2

	// En passant: a pawn moving diagonally onto an empty square removes the
	// enemy pawn directly behind the destination instead.
	if p.Kind == chess.Pawn && captured == nil && to.Col != from.Col {
		behind := chess.Tile{Row: to.Row - p.Colour.Forward(), Col: to.Col}
		victim := s.PieceAt(behind)
		s.SetPiece(behind, nil)
		s.Remove(victim)
	}

	// Castling: the king moves two files and the rook jumps to the square
	// the king crossed.
	if p.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		rook := p.RookKingside
		rookTo := chess.Tile{Row: from.Row, Col: 5}
		if to.Col < from.Col {
			rook = p.RookQueenside
			rookTo = chess.Tile{Row: from.Row, Col: 3}
		}
		s.SetPiece(rook.Tile, nil)
		s.SetPiece(rookTo, rook)
		rook.Tile = rookTo
		rook.Moved = true
		kind = MoveCastling
	}

	if captured != nil {
		s.Remove(captured)
	}
	s.SetPiece(from, nil)
	s.SetPiece(to, p)
	p.Tile = to
	p.Moved = true

	// Promotion: a pawn on the far rank is replaced by a queen that has
	// already moved and can never promote again.
	if p.Kind == chess.Pawn && to.Row == p.Colour.LastRank() {
		queen := chess.NewPiece(chess.Queen, p.Colour, to)
		queen.Moved = true
		s.Remove(p)
		s.Place(queen)
	}

	// The en passant window is exactly one ply: every pawn's flag expires on
	// the next executed half-move, whichever side makes it.
	expireDoubleMoveFlags(s)
	if doublePush {
		p.JustDoubleMoved = true
	}

	return kind
}

func expireDoubleMoveFlags(s *chess.GameState) {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range s.Pieces(c) {
			p.JustDoubleMoved = false
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
