package board

import "strings"

// String renders the board as text, one framed line per row, followed by
// the floor. Each cell takes three characters:
//
//	"   " empty, "[X]" moving faller, "|X|" stopped faller,
//	" X " frozen jewel, "*X*" matched jewel.
func (e *Engine) String() string {
	var b strings.Builder
	for row := 0; row < e.rows; row++ {
		b.WriteByte('|')
		for col := 0; col < e.cols; col++ {
			b.WriteString(e.cells[row][col].String())
		}
		b.WriteString("|\n")
	}
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("-", 3*e.cols))
	b.WriteByte(' ')
	return b.String()
}

func (c Cell) String() string {
	if c.Status == Empty {
		return "   "
	}

	jewel := c.Content.String()
	switch c.Status {
	case FallerMoving:
		return "[" + jewel + "]"
	case FallerStopped:
		return "|" + jewel + "|"
	case Matched:
		return "*" + jewel + "*"
	default:
		return " " + jewel + " "
	}
}

// Jewels joins jewels into a string, empty ones as spaces.
func Jewels(js ...Jewel) string {
	var b strings.Builder
	for _, j := range js {
		b.WriteString(j.String())
	}
	return b.String()
}
