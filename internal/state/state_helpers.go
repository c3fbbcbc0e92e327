package state

// Move is a player command aimed at the active faller.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
	MoveRotate
)

// ParseMove maps an input symbol to a faller move.
func ParseMove(ch string) Move {
	switch ch {
	case "left", "h", "a":
		return MoveLeft
	case "right", "l", "d":
		return MoveRight
	case "rotate", " ", "space", "up", "k", "w":
		return MoveRotate
	default:
		return MoveNone
	}
}

func IsExitRequested(ch string) bool {
	return ch == "ctrl+c" || ch == "q" || ch == "esc"
}

func IsPauseRequested(ch string) bool {
	return ch == "p" || ch == "pause"
}

func IsRestartRequested(ch string) bool {
	return ch == "r" || ch == "restart"
}

func (s State) IsRunning() bool {
	return !s.GameOver && !s.Paused
}

