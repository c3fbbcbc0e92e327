package board

// minRun is the shortest line of equal jewels that matches.
const minRun = 3

type position struct {
	row, col int
}

// markMatches marks every run on the board as Matched without clearing it.
// Rows are scanned left to right, columns bottom to top, and both diagonal
// directions from every cell on the top edge and the relevant side edge.
func (e *Engine) markMatches() {
	for row := 0; row < e.rows; row++ {
		e.markRuns(e.line(position{row, 0}, 0, 1))
	}

	for col := 0; col < e.cols; col++ {
		e.markRuns(e.line(position{e.rows - 1, col}, -1, 0))
	}

	// Top-left to bottom-right.
	for col := 0; col < e.cols; col++ {
		e.markRuns(e.line(position{0, col}, 1, 1))
	}
	for row := 1; row < e.rows; row++ {
		e.markRuns(e.line(position{row, 0}, 1, 1))
	}

	// Top-right to bottom-left.
	for col := 0; col < e.cols; col++ {
		e.markRuns(e.line(position{0, col}, 1, -1))
	}
	for row := 1; row < e.rows; row++ {
		e.markRuns(e.line(position{row, e.cols - 1}, 1, -1))
	}
}

// line walks from start in steps of (dRow, dCol) until it leaves the board.
func (e *Engine) line(start position, dRow, dCol int) []position {
	var out []position
	for p := start; e.inBounds(p.row, p.col); p = (position{p.row + dRow, p.col + dCol}) {
		out = append(out, p)
	}
	return out
}

// markRuns marks each run of at least minRun equal matchable jewels along
// line. Matched cells still count, so runs on different axes may overlap.
func (e *Engine) markRuns(line []position) {
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && e.continuesRun(line[start], line[i]) {
			continue
		}
		if i-start >= minRun && e.CellStatus(line[start].row, line[start].col).matchable() {
			for _, p := range line[start:i] {
				e.setStatus(p.row, p.col, Matched)
			}
		}
		start = i
	}
}

func (e *Engine) continuesRun(first, next position) bool {
	a := e.cells[first.row][first.col]
	b := e.cells[next.row][next.col]
	return a.Status.matchable() && b.Status.matchable() && a.Content == b.Content
}
