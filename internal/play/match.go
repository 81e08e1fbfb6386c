// Package play provides the thin collaborators that sit on top of the rules
// engine: turn tracking and winner bookkeeping, uniform-random move
// selection, and a self-play driver. The engine itself is turn-agnostic;
// everything here is built on its public move and outcome tags.
package play

import (
	"github.com/mathisdelsart/chess-engine/internal/chess"
	"github.com/mathisdelsart/chess-engine/internal/engine"
	errs "github.com/mathisdelsart/chess-engine/internal/errors"
)

// Status is the match state machine. Checkmate and Stalemate are terminal.
type Status int

const (
	AwaitingMove Status = iota
	InCheck
	MatchCheckmate
	MatchStalemate
)

// String returns the string representation of a status.
func (st Status) String() string {
	names := []string{"awaiting move", "check", "checkmate", "stalemate"}
	if int(st) < len(names) {
		return names[st]
	}
	return "unknown"
}

// Match drives one game on top of the engine: it owns a GameState, enforces
// turn order, and tracks the terminal result. A Match guards exactly one
// GameState and shares nothing with other matches.
type Match struct {
	state     *chess.GameState
	turn      chess.Colour
	status    Status
	winner    chess.Colour
	hasWinner bool
}

// NewMatch starts a match from the standard initial position. White moves
// first.
func NewMatch() *Match {
	return &Match{state: engine.NewGame(), turn: chess.White}
}

// State exposes the underlying game state, for reading positions and legal
// moves. Callers must route all mutation through Play.
func (m *Match) State() *chess.GameState {
	return m.state
}

// Turn returns the colour to move.
func (m *Match) Turn() chess.Colour {
	return m.turn
}

// Status returns the current state-machine status.
func (m *Match) Status() Status {
	return m.status
}

// Over reports whether the match reached a terminal status.
func (m *Match) Over() bool {
	return m.status == MatchCheckmate || m.status == MatchStalemate
}

// Winner returns the mating side. ok is false while the match is running and
// after a stalemate.
func (m *Match) Winner() (chess.Colour, bool) {
	return m.winner, m.hasWinner
}

// Play validates turn order, applies one half-move through the engine, and
// advances the state machine on the filter's classification.
func (m *Match) Play(from, to chess.Tile) (engine.Result, error) {
	if m.Over() {
		return engine.Result{}, errs.Wrapf(errs.ErrIllegalMove, "match is over (%s)", m.status)
	}
	if p := m.state.PieceAt(from); p != nil && p.Colour != m.turn {
		return engine.Result{}, &errs.MoveError{From: from.String(), To: to.String(), Err: errs.ErrWrongTurnColour}
	}

	res, err := engine.ApplyMove(m.state, from, to)
	if err != nil {
		return engine.Result{}, err
	}

	switch res.Outcome {
	case engine.Check:
		m.status = InCheck
	case engine.Checkmate:
		m.status = MatchCheckmate
		m.winner = m.turn
		m.hasWinner = true
	case engine.Stalemate:
		m.status = MatchStalemate
	default:
		m.status = AwaitingMove
	}
	m.turn = m.turn.Other()
	return res, nil
}

// Feedback reduces a combined result to the single tag a front end should
// surface for one half-move: terminal outcomes first, then check, then the
// executor's move kind.
func Feedback(r engine.Result) string {
	switch r.Outcome {
	case engine.Checkmate, engine.Stalemate, engine.Check:
		return r.Outcome.String()
	}
	return r.Move.String()
}
