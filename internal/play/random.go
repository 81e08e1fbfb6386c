package play

import (
	"math/rand"

	"github.com/mathisdelsart/chess-engine/internal/chess"
)

// RandomPlayer selects uniformly among a colour's legal moves. It is the
// reference move-selection strategy; anything smarter plugs into the same
// engine interface.
type RandomPlayer struct {
	Colour chess.Colour
	rng    *rand.Rand
}

// NewRandomPlayer returns a player with its own seeded source, so picks are
// reproducible for a given seed.
func NewRandomPlayer(colour chess.Colour, seed int64) *RandomPlayer {
	return &RandomPlayer{Colour: colour, rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly random legal move for the player's colour. ok is
// false when no legal move exists.
func (rp *RandomPlayer) Pick(s *chess.GameState) (from, to chess.Tile, ok bool) {
	type candidate struct {
		from, to chess.Tile
	}
	var all []candidate
	for _, p := range s.Pieces(rp.Colour) {
		for _, m := range p.Moves {
			all = append(all, candidate{from: p.Tile, to: m})
		}
	}
	if len(all) == 0 {
		return chess.Tile{}, chess.Tile{}, false
	}
	pick := all[rp.rng.Intn(len(all))]
	return pick.from, pick.to, true
}
