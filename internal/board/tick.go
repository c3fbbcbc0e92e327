package board

// Tick advances the game by one time step and reports whether the game is
// over. In order it:
//   - clears cells matched on the previous tick, settles the board and marks
//     any new runs (they are cleared on the next tick);
//   - freezes a faller that stopped on the previous tick;
//   - otherwise lets the faller fall one row, or stops it if it has landed.
//
// A stopped faller is frozen one tick after it stops so the landing can be
// shown before the jewels become permanent.
func (e *Engine) Tick() bool {
	if e.HasMatches() {
		e.clearMatches()
		e.applyGravity()
		e.markMatches()
	}

	if !e.faller.active {
		return false
	}

	if !e.faller.moving {
		return e.freezeFaller()
	}

	if e.isSolid(e.faller.displayBottom()+1, e.faller.col) {
		e.faller.moving = false
		e.refreshFaller()
		return false
	}

	// The emerging faller already shows at row 0, so it skips to row 1.
	if e.faller.row == emergingRow {
		e.faller.row = 1
	} else {
		e.faller.row++
	}
	e.refreshFaller()
	return false
}

func (e *Engine) clearMatches() {
	for r := range e.cells {
		for c := range e.cells[r] {
			if e.cells[r][c].Status == Matched {
				e.clearCell(r, c)
			}
		}
	}
}

// freezeFaller turns the stopped faller into Occupied jewels. It reports
// game over when the piece never fully entered the board.
func (e *Engine) freezeFaller() bool {
	col := e.faller.col
	for i := 0; i < FallerSize; i++ {
		row := e.faller.row - i
		if row < 0 {
			continue
		}
		e.setCell(row, col, e.faller.contents[FallerSize-1-i], Occupied)
	}

	if e.faller.row-(FallerSize-1) < 0 {
		return true
	}

	e.faller.active = false
	e.markMatches()
	return false
}

