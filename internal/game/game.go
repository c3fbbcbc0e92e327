package game

import (
	"context"

	"go-columns/internal/state"

	"go.uber.org/zap"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State
}

// NewGame initializes a new game instance.
func NewGame(opts state.GameOptions, pieces state.PieceSource, log *zap.Logger) *Game {
	return &Game{
		State: state.NewState(opts, pieces, log),
	}
}

// Init spawns the first faller.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), "initGame")
}

// HandleTick advances the board by one tick.
func (g *Game) HandleTick() {
	if !g.State.IsRunning() {
		return
	}
	_ = g.State.FSM.Event(context.Background(), "tick")
}

// HandleKeyPress processes an input symbol and updates the game state.
func (g *Game) HandleKeyPress(ch string) {
	if g.State.GameOver {
		return
	}

	if state.IsPauseRequested(ch) {
		g.TogglePause()
		return
	}
	if g.State.Paused || state.ParseMove(ch) == state.MoveNone {
		return
	}

	_ = g.State.FSM.Event(context.Background(), "input", ch)
}

func (g *Game) TogglePause() {
	if g.State.Paused {
		_ = g.State.FSM.Event(context.Background(), "resume")
		return
	}
	_ = g.State.FSM.Event(context.Background(), "pause")
}
