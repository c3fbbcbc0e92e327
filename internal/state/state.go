package state

import (
	"context"
	"time"

	"go-columns/internal/board"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

type GameOptions struct {
	Rows         int
	Columns      int
	TickInterval time.Duration
	Seed         int64           // 0 picks a time-based seed
	Layout       [][]board.Jewel // optional starting layout
}

// PieceSource picks where the next faller enters and what it holds.
// ok is false when no column can take a new piece.
type PieceSource interface {
	NextPiece(b *board.Engine) (col int, jewels [board.FallerSize]board.Jewel, ok bool)
}

type State struct {
	Board   *board.Engine
	FSM     *fsm.FSM
	Pieces  PieceSource
	Log     *zap.Logger
	Options GameOptions

	CurrentInput string // input being processed
	Landed       bool   // a faller came to rest during the last tick
	Matched      bool   // matched jewels are waiting to be cleared
	GameOver     bool
	Paused       bool
	Ticks        int
	Spawned      int
}

func NewState(opts GameOptions, pieces PieceSource, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}

	s := &State{
		Board:   board.New(opts.Rows, opts.Columns),
		Pieces:  pieces,
		Log:     log,
		Options: opts,
	}

	if len(opts.Layout) > 0 {
		s.Board.InitializeBoardContents(opts.Layout)
		s.Matched = s.Board.HasMatches()
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "spawning"},

		// Time
		{Name: "tick", Src: []string{"idle"}, Dst: "ticking"},
		{Name: "ticked", Src: []string{"ticking"}, Dst: "idle"},
		{Name: "spawnNext", Src: []string{"ticking"}, Dst: "spawning"},
		{Name: "spawned", Src: []string{"spawning"}, Dst: "idle"},

		// Player
		{Name: "input", Src: []string{"idle"}, Dst: "handlingInput"},
		{Name: "handled", Src: []string{"handlingInput"}, Dst: "idle"},
		{Name: "pause", Src: []string{"idle"}, Dst: "paused"},
		{Name: "resume", Src: []string{"paused"}, Dst: "idle"},

		{Name: "gameEnd", Src: []string{"ticking", "spawning"}, Dst: "endState"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			s.Log.Debug("state transition",
				zap.String("event", e.Event),
				zap.String("from", e.Src),
				zap.String("to", e.Dst),
			)
		},
		"enter_ticking": func(ctx context.Context, e *fsm.Event) {
			before, _ := s.Board.Faller()

			s.GameOver = s.Board.Tick()
			s.Ticks++

			after, active := s.Board.Faller()
			s.Landed = before.Moving && active && !after.Moving
			s.Matched = s.Board.HasMatches()

			if s.Landed {
				s.Log.Debug("faller landed", zap.Int("row", after.Row), zap.Int("column", after.Column))
			}
			if s.Matched {
				s.Log.Debug("jewels matched", zap.Int("tick", s.Ticks))
			}

			if s.GameOver {
				e.FSM.Event(ctx, "gameEnd")
				return
			}
			if !s.Board.HasFaller() {
				e.FSM.Event(ctx, "spawnNext")
				return
			}
			e.FSM.Event(ctx, "ticked")
		},
		"enter_spawning": func(ctx context.Context, e *fsm.Event) {
			col, jewels, ok := s.Pieces.NextPiece(s.Board)
			if !ok {
				s.Log.Debug("no open column for next piece")
				s.GameOver = true
				e.FSM.Event(ctx, "gameEnd")
				return
			}

			if s.Board.Spawn(col, jewels) {
				s.GameOver = true
				e.FSM.Event(ctx, "gameEnd")
				return
			}

			s.Spawned++
			s.Log.Debug("spawned faller",
				zap.Int("column", col),
				zap.String("jewels", board.Jewels(jewels[:]...)),
			)
			e.FSM.Event(ctx, "spawned")
		},
		"enter_handlingInput": func(ctx context.Context, e *fsm.Event) {
			if len(e.Args) > 0 {
				s.CurrentInput, _ = e.Args[0].(string)
			} else {
				s.CurrentInput = ""
			}

			switch ParseMove(s.CurrentInput) {
			case MoveLeft:
				s.Board.ShiftFaller(board.Left)
			case MoveRight:
				s.Board.ShiftFaller(board.Right)
			case MoveRotate:
				s.Board.RotateFaller()
			}

			e.FSM.Event(ctx, "handled")
		},
		"enter_paused": func(_ context.Context, e *fsm.Event) {
			s.Paused = true
		},
		"leave_paused": func(_ context.Context, e *fsm.Event) {
			s.Paused = false
		},
		"enter_endState": func(_ context.Context, e *fsm.Event) {
			s.Log.Info("game over",
				zap.Int("ticks", s.Ticks),
				zap.Int("pieces", s.Spawned),
			)
			s.Log.Debug("final board\n" + s.Board.String())
		},
	}
}
