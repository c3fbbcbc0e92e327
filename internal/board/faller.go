package board

// emergingRow is the anchor row of a faller that has just spawned. Only its
// bottom jewel is visible, drawn at row 0.
const emergingRow = -1

// FallerSize is the number of jewels in a faller.
const FallerSize = 3

// faller is the active piece. Its grid cells are a projection redrawn by
// refreshFaller after every change; row, col and contents are authoritative.
type faller struct {
	active   bool
	row      int // row of the bottom jewel
	col      int
	contents [FallerSize]Jewel // top, middle, bottom
	moving   bool
}

// Faller is a read-only snapshot of the active piece.
type Faller struct {
	Row      int
	Column   int
	Contents [FallerSize]Jewel
	Moving   bool
}

// Faller returns a snapshot of the active faller and whether one exists.
func (e *Engine) Faller() (Faller, bool) {
	if !e.faller.active {
		return Faller{}, false
	}
	return Faller{
		Row:      e.faller.row,
		Column:   e.faller.col,
		Contents: e.faller.contents,
		Moving:   e.faller.moving,
	}, true
}

func (e *Engine) HasFaller() bool {
	return e.faller.active
}

// displayBottom is the grid row where the bottom jewel is drawn.
func (f *faller) displayBottom() int {
	if f.row == emergingRow {
		return 0
	}
	return f.row
}

// Spawn creates a faller in col holding jewels ordered top, middle, bottom.
// It returns true when the game is over because col is full. Spawning while
// a faller is active, or into a column outside the board, does nothing.
func (e *Engine) Spawn(col int, jewels [FallerSize]Jewel) bool {
	if e.faller.active || col < 0 || col >= e.cols {
		return false
	}
	if e.CellStatus(0, col) == Occupied {
		return true
	}

	e.faller = faller{
		active:   true,
		row:      emergingRow,
		col:      col,
		contents: jewels,
		moving:   true,
	}
	e.refreshFaller()
	return false
}

// ShiftFaller moves the faller one column sideways unless the board edge or
// a frozen jewel next to any of its visible cells is in the way.
func (e *Engine) ShiftFaller(dir Direction) {
	if !e.faller.active || (dir != Left && dir != Right) {
		return
	}

	target := e.faller.col + int(dir)
	if target < 0 || target >= e.cols {
		return
	}

	bottom := e.faller.displayBottom()
	for i := 0; i < FallerSize; i++ {
		row := e.faller.row - i
		if i == 0 {
			// An emerging faller shows on row 0, so that row blocks it too.
			row = bottom
		}
		if row < 0 {
			continue
		}
		if e.CellStatus(row, target) == Occupied {
			return
		}
	}

	e.clearFallerCells(e.faller.col)
	e.faller.col = target
	e.refreshFaller()
}

// RotateFaller cycles the faller's jewels: the bottom jewel moves to the
// top and the others shift down one slot.
func (e *Engine) RotateFaller() {
	if !e.faller.active {
		return
	}

	c := e.faller.contents
	e.faller.contents = [FallerSize]Jewel{c[2], c[0], c[1]}
	e.refreshFaller()
}

func (e *Engine) clearFallerCells(col int) {
	for row := 0; row < e.rows; row++ {
		if e.CellStatus(row, col).isFaller() {
			e.clearCell(row, col)
		}
	}
}

// refreshFaller recomputes whether the faller is still moving and redraws
// its cells in its column.
func (e *Engine) refreshFaller() {
	if !e.faller.active {
		return
	}

	col := e.faller.col
	e.clearFallerCells(col)

	bottom := e.faller.displayBottom()
	e.faller.moving = !e.isSolid(bottom+1, col)

	status := FallerStopped
	if e.faller.moving {
		status = FallerMoving
	}

	// While emerging only the bottom jewel is on the board.
	for i := 0; i < FallerSize; i++ {
		row := e.faller.row - i
		if i == 0 {
			row = bottom
		}
		if row < 0 {
			continue
		}
		e.setCell(row, col, e.faller.contents[FallerSize-1-i], status)
	}
}
