package board

// Jewel is a single matchable tile symbol. The alphabet belongs to the caller;
// the engine only compares jewels for equality.
type Jewel rune

// NoJewel is the content of an empty cell.
const NoJewel Jewel = 0

func (j Jewel) String() string {
	if j == NoJewel {
		return " "
	}
	return string(rune(j))
}

// Status is the state of a single grid cell.
type Status uint8

const (
	Empty Status = iota
	FallerMoving
	FallerStopped
	Occupied
	Matched
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "Empty"
	case FallerMoving:
		return "FallerMoving"
	case FallerStopped:
		return "FallerStopped"
	case Occupied:
		return "Occupied"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// matchable reports whether a cell with this status can take part in a run.
func (s Status) matchable() bool {
	return s == Occupied || s == Matched
}

func (s Status) isFaller() bool {
	return s == FallerMoving || s == FallerStopped
}

// Cell is one grid position. Content is NoJewel iff Status is Empty.
type Cell struct {
	Content Jewel
	Status  Status
}

// Direction is a sideways faller move.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Engine owns the grid and the active faller and applies every rule of the
// game to them. It is not safe for concurrent use.
type Engine struct {
	rows   int
	cols   int
	cells  [][]Cell
	faller faller
}

// New creates an empty board with the given dimensions.
// Non-positive dimensions are clamped to 1.
func New(rows, cols int) *Engine {
	rows = max(rows, 1)
	cols = max(cols, 1)

	e := &Engine{rows: rows, cols: cols}
	e.cells = make([][]Cell, rows)
	for r := range e.cells {
		e.cells[r] = make([]Cell, cols)
	}
	return e
}

func (e *Engine) Rows() int {
	return e.rows
}

func (e *Engine) Columns() int {
	return e.cols
}

func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.rows && col >= 0 && col < e.cols
}

// CellContent returns the jewel at (row, col), or NoJewel when out of range.
func (e *Engine) CellContent(row, col int) Jewel {
	if !e.inBounds(row, col) {
		return NoJewel
	}
	return e.cells[row][col].Content
}

// CellStatus returns the status at (row, col), or Empty when out of range.
func (e *Engine) CellStatus(row, col int) Status {
	if !e.inBounds(row, col) {
		return Empty
	}
	return e.cells[row][col].Status
}

// Cell returns both halves of (row, col).
func (e *Engine) Cell(row, col int) Cell {
	if !e.inBounds(row, col) {
		return Cell{}
	}
	return e.cells[row][col]
}

func (e *Engine) setCell(row, col int, content Jewel, status Status) {
	if !e.inBounds(row, col) {
		return
	}
	if status == Empty {
		content = NoJewel
	}
	e.cells[row][col] = Cell{Content: content, Status: status}
}

func (e *Engine) setStatus(row, col int, status Status) {
	if !e.inBounds(row, col) {
		return
	}
	e.cells[row][col].Status = status
}

func (e *Engine) clearCell(row, col int) {
	e.setCell(row, col, NoJewel, Empty)
}

// isSolid reports whether a faller or a settling jewel would rest on
// (row, col). The floor below the last row is solid.
func (e *Engine) isSolid(row, col int) bool {
	if row >= e.rows {
		return true
	}
	return e.CellStatus(row, col) == Occupied
}

// HasMatches reports whether any cell is currently marked Matched.
func (e *Engine) HasMatches() bool {
	for r := range e.cells {
		for c := range e.cells[r] {
			if e.cells[r][c].Status == Matched {
				return true
			}
		}
	}
	return false
}

// CanSpawn reports whether a new faller may enter col.
func (e *Engine) CanSpawn(col int) bool {
	if col < 0 || col >= e.cols {
		return false
	}
	return e.CellStatus(0, col) != Occupied
}

// InitializeBoardContents bulk-loads a starting layout. Rows and columns
// outside the board are ignored and missing cells are empty. Gravity is
// applied and resulting runs are marked, but not cleared, so they show
// until the first tick.
func (e *Engine) InitializeBoardContents(layout [][]Jewel) {
	e.faller = faller{}

	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			jewel := NoJewel
			if r < len(layout) && c < len(layout[r]) {
				jewel = layout[r][c]
			}
			if jewel == NoJewel {
				e.clearCell(r, c)
			} else {
				e.setCell(r, c, jewel, Occupied)
			}
		}
	}

	e.applyGravity()
	e.markMatches()
}
