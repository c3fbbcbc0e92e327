package game

import (
	"math/rand"
	"time"

	"go-columns/internal/board"
	"go-columns/internal/state"

	"go.uber.org/zap"
)

// Jewels is the alphabet new fallers are drawn from.
var Jewels = []board.Jewel{'R', 'G', 'O', 'P', 'B', 'Y', 'T'}

// Session runs consecutive games on the same options and deals their pieces.
type Session struct {
	Options     state.GameOptions
	CurrentGame *Game
	GamesPlayed int
	Log         *zap.Logger

	rng *rand.Rand
}

func NewSession(opts state.GameOptions, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		Options: opts,
		Log:     log,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Log.Info("session started",
		zap.Int("rows", opts.Rows),
		zap.Int("columns", opts.Columns),
		zap.Int64("seed", seed),
	)

	s.NextGame()
	return s
}

// NextGame replaces the current game with a fresh one.
func (s *Session) NextGame() {
	g := NewGame(s.Options, s, s.Log.With(zap.Int("game", s.GamesPlayed+1)))
	g.Init()

	s.CurrentGame = g
	s.GamesPlayed++
}

// NextPiece picks a random column whose top cell is free and three random
// jewels. It reports false when every column is full.
func (s *Session) NextPiece(b *board.Engine) (int, [board.FallerSize]board.Jewel, bool) {
	var open []int
	for col := 0; col < b.Columns(); col++ {
		if b.CanSpawn(col) {
			open = append(open, col)
		}
	}

	var jewels [board.FallerSize]board.Jewel
	if len(open) == 0 {
		return 0, jewels, false
	}

	col := open[s.rng.Intn(len(open))]
	for i := range jewels {
		jewels[i] = Jewels[s.rng.Intn(len(Jewels))]
	}
	return col, jewels, true
}

func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.GameOver
}
