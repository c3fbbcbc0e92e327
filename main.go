package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-columns/internal/board"
	"go-columns/internal/game"
	"go-columns/internal/logging"
	"go-columns/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Game over
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Status line
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, true, true, true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	jewelColors = map[board.Jewel]lipgloss.Color{
		'R': lipgloss.Color("9"),
		'G': lipgloss.Color("10"),
		'O': lipgloss.Color("208"),
		'P': lipgloss.Color("93"),
		'B': lipgloss.Color("12"),
		'Y': lipgloss.Color("11"),
		'T': lipgloss.Color("14"),
	}
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h", "a"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "d"),
		key.WithHelp("→/l", "right"),
	),
	Rotate: key.NewBinding(
		key.WithKeys(" ", "up", "k", "w"),
		key.WithHelp("space/↑", "rotate"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new game"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type LocalState struct {
	Session *game.Session
	Help    help.Model
	Tick    time.Duration
}

// TickMsg carries the number of the game that scheduled it, so ticks left
// over from a finished game are dropped.
type TickMsg struct {
	Game int
	Time time.Time
}

func tickCmd(interval time.Duration, game int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Game: game, Time: t}
	})
}

func initialModel(opts state.GameOptions, log *zap.Logger) *LocalState {
	return &LocalState{
		Session: game.NewSession(opts, log),
		Help:    help.New(),
		Tick:    opts.TickInterval,
	}
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd(s.Tick, s.Session.GamesPlayed)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	g := s.Session.CurrentGame

	switch msg := msg.(type) {
	case TickMsg:
		if msg.Game != s.Session.GamesPlayed || s.Session.IsFinished() {
			return s, nil
		}
		g.HandleTick()
		if s.Session.IsFinished() {
			// Stop ticking until a new game starts.
			return s, nil
		}
		return s, tickCmd(s.Tick, msg.Game)
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case state.IsExitRequested(msg.String()):
			return s, tea.Quit
		case key.Matches(msg, keys.Help):
			s.Help.ShowAll = !s.Help.ShowAll
		case state.IsRestartRequested(msg.String()):
			if s.Session.IsFinished() {
				s.Session.NextGame()
				return s, tickCmd(s.Tick, s.Session.GamesPlayed)
			}
		case key.Matches(msg, keys.Left):
			g.HandleKeyPress("left")
		case key.Matches(msg, keys.Right):
			g.HandleKeyPress("right")
		case key.Matches(msg, keys.Rotate):
			g.HandleKeyPress("rotate")
		case key.Matches(msg, keys.Pause):
			g.HandleKeyPress("pause")
		}
	}

	return s, nil
}

// renderCell draws one cell two characters wide.
func (s *LocalState) renderCell(c board.Cell) string {
	st := s.Session.CurrentGame.State

	if c.Status == board.Empty {
		return emptyStyle.Render(" ·")
	}

	style := lipgloss.NewStyle().Foreground(jewelColors[c.Content])
	glyph := "██"
	switch c.Status {
	case board.FallerMoving:
		glyph = "▓▓"
	case board.FallerStopped:
		glyph = "[]"
		if st.Landed {
			style = style.Bold(true).Reverse(true)
		}
	case board.Matched:
		glyph = "**"
		if st.Matched {
			style = style.Reverse(true)
		}
	}
	return style.Render(glyph)
}

func (s *LocalState) RenderBoard() string {
	b := s.Session.CurrentGame.State.Board

	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			sb.WriteString(s.renderCell(b.Cell(row, col)))
		}
		if row < b.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return boardStyle.Render(sb.String())
}

func (s *LocalState) View() string {
	st := s.Session.CurrentGame.State

	display := s.RenderBoard()

	statusLine := fmt.Sprintf("TICKS: %d | PIECES: %d", st.Ticks, st.Spawned)
	if s.Session.GamesPlayed > 1 {
		statusLine += fmt.Sprintf(" | GAME: %d", s.Session.GamesPlayed)
	}
	if st.Paused {
		statusLine += " | PAUSED"
	}
	display += "\n" + statusStyle.Render(statusLine)

	if st.GameOver {
		display += "\n" + redStyle.Render("Game over! Press r for a new game or q to quit.")
	}

	display += "\n" + s.Help.View(keys)
	return display
}

// tickFlag accepts a Go duration ("750ms") or a number of seconds ("1.5").
type tickFlag time.Duration

func (t *tickFlag) String() string {
	return time.Duration(*t).String()
}

func (t *tickFlag) Set(s string) error {
	if d, err := time.ParseDuration(s); err == nil {
		*t = tickFlag(d)
	} else if secs, err := strconv.ParseFloat(s, 64); err == nil {
		*t = tickFlag(secs * float64(time.Second))
	} else {
		return fmt.Errorf("invalid tick interval: %s (use seconds or a duration like 500ms)", s)
	}

	if *t <= 0 {
		return fmt.Errorf("tick interval must be positive: %s", s)
	}
	return nil
}

func main() {
	// defaults
	var tFlag = tickFlag(time.Second)
	var rows, cols int
	var seed int64
	var layoutPath string
	var debug bool
	var logPath string

	flag.Var(&tFlag, "tick", "Time between ticks (e.g. 1, 0.5 or 750ms)")
	flag.Var(&tFlag, "t", "Time between ticks (shorthand)")

	flag.IntVar(&rows, "rows", 13, "Number of board rows")
	flag.IntVar(&cols, "cols", 6, "Number of board columns")
	flag.Int64Var(&seed, "seed", 0, "Random seed for pieces (0 picks one)")

	flag.StringVar(&layoutPath, "layout", "", "Starting layout file (.txt or .json)")
	flag.StringVar(&layoutPath, "l", "", "Starting layout file (shorthand)")

	flag.BoolVar(&debug, "debug", false, "Write a debug log")
	flag.StringVar(&logPath, "log", "", "Log file path (default: temp dir when -debug is set)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -t, --tick=INTERVAL     Time between ticks (e.g. 1, 0.5 or 750ms). Default 1s.\n")
		fmt.Fprintf(os.Stderr, "       --rows=N            Number of board rows (default 13)\n")
		fmt.Fprintf(os.Stderr, "       --cols=N            Number of board columns (default 6)\n")
		fmt.Fprintf(os.Stderr, "       --seed=N            Random seed for pieces\n")
		fmt.Fprintf(os.Stderr, "   -l, --layout=FILE       Starting layout file (.txt or .json)\n")
		fmt.Fprintf(os.Stderr, "       --debug             Write a debug log\n")
		fmt.Fprintf(os.Stderr, "       --log=FILE          Log file path\n")
		fmt.Fprintf(os.Stderr, "   -h, --help              Show this help message\n")
	}

	flag.Parse()

	if rows < 3 || cols < 1 {
		fmt.Fprintln(os.Stderr, "Board needs at least 3 rows and 1 column")
		os.Exit(2)
	}

	if debug && logPath == "" {
		logPath = logging.DefaultPath()
	}
	log, err := logging.New(logPath, debug)
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	opts := state.GameOptions{
		Rows:         rows,
		Columns:      cols,
		TickInterval: time.Duration(tFlag),
		Seed:         seed,
	}

	if layoutPath != "" {
		layout, err := game.LoadLayout(layoutPath, rows, cols)
		if err != nil {
			log.Error("layout failed to load", zap.String("path", layoutPath), zap.Error(err))
			log.Sync()
			fmt.Printf("Error loading layout: %v\n", err)
			os.Exit(1)
		}
		opts.Layout = layout
	}

	p := tea.NewProgram(initialModel(opts, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", zap.Error(err))
		fmt.Printf("Error starting the program: %v\n", err)
	}
}
