package play

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mathisdelsart/chess-engine/internal/chess"
	"github.com/mathisdelsart/chess-engine/internal/engine"
	"github.com/mathisdelsart/chess-engine/internal/testutil"
)

func TestRandomPlayerPicksLegalMoves(t *testing.T) {
	m := NewMatch()
	rp := NewRandomPlayer(chess.White, 1)

	for i := 0; i < 10; i++ {
		from, to, ok := rp.Pick(m.State())
		testutil.AssertTrue(t, ok, "White always has a move this early")
		legal := engine.LegalMovesFor(m.State(), from)
		found := false
		for _, mv := range legal {
			if mv == to {
				found = true
			}
		}
		if !found {
			t.Fatalf("pick %d: %v -> %v is not in the legal set %v", i, from, to, legal)
		}
	}
}

func TestRandomPlayerHasNoMoveOutOfTurn(t *testing.T) {
	m := NewMatch()
	rp := NewRandomPlayer(chess.Black, 1)
	if from, to, ok := rp.Pick(m.State()); ok {
		t.Errorf("Black picked %v -> %v before White moved", from, to)
	}
}

func TestRandomPlayerIsDeterministicPerSeed(t *testing.T) {
	a := NewRandomPlayer(chess.White, 42)
	b := NewRandomPlayer(chess.White, 42)
	s := engine.NewGame()

	for i := 0; i < 5; i++ {
		fromA, toA, okA := a.Pick(s)
		fromB, toB, okB := b.Pick(s)
		testutil.AssertTrue(t, okA && okB)
		testutil.AssertEqual(t, fromA, fromB, "pick %d source", i)
		testutil.AssertEqual(t, toA, toB, "pick %d destination", i)
	}
}

func TestSelfPlayTerminates(t *testing.T) {
	const maxPlies = 80

	m, plies := SelfPlay(zerolog.Nop(), 7, maxPlies)
	if m == nil {
		t.Fatal("SelfPlay returned a nil match")
	}
	if plies > maxPlies {
		t.Fatalf("played %d plies, cap is %d", plies, maxPlies)
	}
	if plies < maxPlies && !m.Over() {
		t.Errorf("stopped after %d plies with status %v", plies, m.Status())
	}

	m2, plies2 := SelfPlay(zerolog.Nop(), 7, maxPlies)
	testutil.AssertEqual(t, plies2, plies, "same seed replays the same game")
	testutil.AssertEqual(t, m2.Status(), m.Status())
}
