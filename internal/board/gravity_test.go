package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravity_MultiRowFall(t *testing.T) {
	e := New(5, 2)
	e.setCell(0, 0, 'A', Occupied)
	e.setCell(1, 0, 'B', Occupied)
	e.setCell(0, 1, 'C', Matched)

	e.applyGravity()

	assert.Equal(t, Cell{Content: 'A', Status: Occupied}, e.Cell(3, 0))
	assert.Equal(t, Cell{Content: 'B', Status: Occupied}, e.Cell(4, 0))
	assert.Equal(t, Cell{Content: 'C', Status: Matched}, e.Cell(4, 1))
	for row := 0; row < 3; row++ {
		assert.Equal(t, Cell{}, e.Cell(row, 0), "row %d", row)
	}
}

func TestGravity_IdempotentOnceStable(t *testing.T) {
	e := New(6, 3)
	e.setCell(0, 0, 'A', Occupied)
	e.setCell(2, 0, 'B', Occupied)
	e.setCell(1, 2, 'C', Occupied)

	e.applyGravity()
	settled := e.String()
	e.applyGravity()

	assert.Equal(t, settled, e.String())
}

func TestGravity_LeavesFallerCellsAlone(t *testing.T) {
	e := New(4, 1)
	e.setCell(0, 0, 'A', Occupied)
	e.setCell(1, 0, 'F', FallerMoving)

	e.applyGravity()

	assert.Equal(t, Cell{Content: 'A', Status: Occupied}, e.Cell(0, 0))
	assert.Equal(t, Cell{Content: 'F', Status: FallerMoving}, e.Cell(1, 0))
	assert.Equal(t, Empty, e.CellStatus(3, 0))
}
