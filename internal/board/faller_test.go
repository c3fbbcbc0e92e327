package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abc = [3]Jewel{'A', 'B', 'C'}

func TestSpawn_ShowsBottomJewel(t *testing.T) {
	e := New(13, 6)

	gameOver := e.Spawn(3, abc)

	require.False(t, gameOver)
	assert.True(t, e.HasFaller())
	assert.Equal(t, Cell{Content: 'C', Status: FallerMoving}, e.Cell(0, 3))
	for row := 1; row < e.Rows(); row++ {
		assert.Equal(t, Empty, e.CellStatus(row, 3), "row %d", row)
	}

	f, ok := e.Faller()
	require.True(t, ok)
	assert.Equal(t, Faller{Row: -1, Column: 3, Contents: abc, Moving: true}, f)
}

func TestSpawn_StoppedWhenRowBelowIsSolid(t *testing.T) {
	e := newBoard(t,
		"  ",
		"X ",
		"Y ",
		"X ",
	)

	require.False(t, e.Spawn(0, abc))
	assert.Equal(t, Cell{Content: 'C', Status: FallerStopped}, e.Cell(0, 0))
}

func TestSpawn_FullColumnIsGameOver(t *testing.T) {
	e := newBoard(t,
		"X ",
		"Y ",
		"X ",
	)

	assert.True(t, e.Spawn(0, abc))
	assert.False(t, e.HasFaller())
	assert.Equal(t, Cell{Content: 'X', Status: Occupied}, e.Cell(0, 0))
}

func TestSpawn_IgnoredWhenFallerActive(t *testing.T) {
	e := New(13, 6)
	require.False(t, e.Spawn(1, abc))

	assert.False(t, e.Spawn(4, [3]Jewel{'X', 'Y', 'Z'}))

	f, _ := e.Faller()
	assert.Equal(t, 1, f.Column)
	assert.Equal(t, abc, f.Contents)
	assert.Equal(t, Empty, e.CellStatus(0, 4))
}

func TestSpawn_IgnoresColumnOutsideBoard(t *testing.T) {
	e := New(13, 6)

	assert.False(t, e.Spawn(-1, abc))
	assert.False(t, e.Spawn(6, abc))
	assert.False(t, e.HasFaller())
}

func TestRotateFaller(t *testing.T) {
	e := New(13, 6)
	require.False(t, e.Spawn(2, abc))

	e.RotateFaller()
	f, _ := e.Faller()
	assert.Equal(t, [3]Jewel{'C', 'A', 'B'}, f.Contents)
	assert.Equal(t, Jewel('B'), e.CellContent(0, 2))

	e.RotateFaller()
	f, _ = e.Faller()
	assert.Equal(t, [3]Jewel{'B', 'C', 'A'}, f.Contents)

	e.RotateFaller()
	f, _ = e.Faller()
	assert.Equal(t, abc, f.Contents)
	assert.Equal(t, Jewel('C'), e.CellContent(0, 2))
}

func TestRotateFaller_NoFaller(t *testing.T) {
	e := newBoard(t, "AB", "BA")
	before := e.String()

	e.RotateFaller()

	assert.Equal(t, before, e.String())
	assert.False(t, e.HasFaller())
}

func TestShiftFaller_Edges(t *testing.T) {
	e := New(13, 6)
	require.False(t, e.Spawn(0, abc))
	e.ShiftFaller(Left)
	f, _ := e.Faller()
	assert.Equal(t, 0, f.Column)

	e = New(13, 6)
	require.False(t, e.Spawn(5, abc))
	e.ShiftFaller(Right)
	f, _ = e.Faller()
	assert.Equal(t, 5, f.Column)
	assert.Equal(t, Cell{Content: 'C', Status: FallerMoving}, e.Cell(0, 5))
}

func TestShiftFaller_MovesAllVisibleCells(t *testing.T) {
	e := New(13, 6)
	require.False(t, e.Spawn(2, abc))
	e.Tick()

	e.ShiftFaller(Left)

	f, _ := e.Faller()
	assert.Equal(t, 1, f.Column)
	assert.Equal(t, Cell{Content: 'B', Status: FallerMoving}, e.Cell(0, 1))
	assert.Equal(t, Cell{Content: 'C', Status: FallerMoving}, e.Cell(1, 1))
	for row := 0; row < e.Rows(); row++ {
		assert.Equal(t, Empty, e.CellStatus(row, 2), "row %d", row)
	}

	e.ShiftFaller(Right)
	e.ShiftFaller(Right)
	f, _ = e.Faller()
	assert.Equal(t, 3, f.Column)
	assert.Equal(t, Empty, e.CellStatus(1, 1))
	assert.Equal(t, Jewel('C'), e.CellContent(1, 3))
}

func TestShiftFaller_BlockedByFrozenJewel(t *testing.T) {
	e := newBoard(t,
		"  ",
		"  ",
		" X",
		" Y",
		" X",
	)
	require.False(t, e.Spawn(0, abc))
	e.Tick()
	e.Tick()

	// Bottom jewel now sits at row 2, next to the X in column 1.
	e.ShiftFaller(Right)

	f, _ := e.Faller()
	assert.Equal(t, 0, f.Column)
	assert.Equal(t, Jewel('C'), e.CellContent(2, 0))
	assert.Equal(t, Cell{Content: 'X', Status: Occupied}, e.Cell(2, 1))
}

func TestShiftFaller_EmergingFallerBlockedAtTopRow(t *testing.T) {
	e := newBoard(t,
		" X",
		" Y",
		" X",
	)
	require.False(t, e.Spawn(0, abc))

	e.ShiftFaller(Right)

	f, _ := e.Faller()
	assert.Equal(t, 0, f.Column)
	assert.Equal(t, Cell{Content: 'X', Status: Occupied}, e.Cell(0, 1))
}

func TestShiftFaller_RecomputesLanding(t *testing.T) {
	e := newBoard(t,
		"   ",
		"   ",
		"X  ",
	)
	require.False(t, e.Spawn(0, abc))
	e.Tick()
	require.Equal(t, FallerStopped, e.CellStatus(1, 0))

	e.ShiftFaller(Right)

	assert.Equal(t, FallerMoving, e.CellStatus(1, 1))
	f, _ := e.Faller()
	assert.True(t, f.Moving)
}
