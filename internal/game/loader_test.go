package game

import (
	"os"
	"path/filepath"
	"testing"

	"go-columns/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLayout_Text(t *testing.T) {
	path := createTempFile(t, "puzzle.txt", "  R\n.gB\n\n")

	grid, err := LoadLayout(path, 4, 3)
	require.NoError(t, err)

	want := [][]board.Jewel{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 'R'},
		{0, 'G', 'B'},
	}
	assert.Equal(t, want, grid)
}

func TestLoadLayout_JSON(t *testing.T) {
	path := createTempFile(t, "puzzle.json", `{"rows": ["Y  ", "TOP"]}`)

	grid, err := LoadLayout(path, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, [][]board.Jewel{{'Y', 0, 0}, {'T', 'O', 'P'}}, grid)
}

func TestLoadLayout_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"too many rows", "tall.txt", "R\nG\nB\n"},
		{"too wide", "wide.txt", "RGBY\n"},
		{"unknown jewel", "bad.txt", "RZ\n"},
		{"bad json", "bad.json", `{"rows": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempFile(t, tt.file, tt.content)
			_, err := LoadLayout(path, 2, 3)
			assert.Error(t, err)
		})
	}
}

func TestLoadLayout_MissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.txt"), 13, 6)
	assert.Error(t, err)
}

func TestLoadLayout_FeedsBoard(t *testing.T) {
	path := createTempFile(t, "puzzle.txt", "R  \nR  \nR  \n")

	grid, err := LoadLayout(path, 4, 3)
	require.NoError(t, err)

	b := board.New(4, 3)
	b.InitializeBoardContents(grid)
	assert.Equal(t, board.Matched, b.CellStatus(1, 0))
	assert.Equal(t, board.Matched, b.CellStatus(3, 0))
}
