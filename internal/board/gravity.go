package board

// applyGravity drops unsupported Occupied and Matched jewels one row at a
// time until a full pass over the board moves nothing. Faller cells are
// never moved, and a jewel only drops into an Empty cell.
func (e *Engine) applyGravity() {
	for changed := true; changed; {
		changed = false
		for col := 0; col < e.cols; col++ {
			for row := e.rows - 2; row >= 0; row-- {
				cell := e.cells[row][col]
				if !cell.Status.matchable() {
					continue
				}
				if e.isSolid(row+1, col) || e.cells[row+1][col].Status != Empty {
					continue
				}
				e.setCell(row+1, col, cell.Content, cell.Status)
				e.clearCell(row, col)
				changed = true
			}
		}
	}
}
