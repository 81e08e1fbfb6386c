package play

import (
	"github.com/rs/zerolog"

	"github.com/mathisdelsart/chess-engine/internal/chess"
)

// SelfPlay plays both sides with random move selection until the match
// reaches a terminal status or maxPlies half-moves have been played. It
// returns the finished match and the number of plies played.
func SelfPlay(log zerolog.Logger, seed int64, maxPlies int) (*Match, int) {
	m := NewMatch()
	players := [2]*RandomPlayer{
		chess.White: NewRandomPlayer(chess.White, seed),
		chess.Black: NewRandomPlayer(chess.Black, seed+1),
	}

	plies := 0
	for plies < maxPlies && !m.Over() {
		from, to, ok := players[m.Turn()].Pick(m.State())
		if !ok {
			break
		}
		res, err := m.Play(from, to)
		if err != nil {
			log.Error().Err(err).Stringer("from", from).Stringer("to", to).Msg("move rejected")
			break
		}
		plies++
		log.Debug().
			Int("ply", plies).
			Stringer("from", from).
			Stringer("to", to).
			Str("feedback", Feedback(res)).
			Msg("played")
	}
	return m, plies
}
