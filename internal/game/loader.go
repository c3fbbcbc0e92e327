package game

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"go-columns/internal/board"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LayoutData is the JSON form of a starting layout.
type LayoutData struct {
	Rows []string `json:"rows"`
}

// LoadLayout reads a starting board from path. Text files hold one line per
// row; JSON files hold a LayoutData object. Spaces and dots are empty
// cells. Layouts shorter than the board fill its bottom rows.
func LoadLayout(path string, rows, cols int) ([][]board.Jewel, error) {
	var lines []string
	var err error

	if strings.EqualFold(filepath.Ext(path), ".json") {
		lines, err = loadJSONLayout(path)
	} else {
		lines, err = loadTextLayout(path)
	}
	if err != nil {
		return nil, err
	}

	return ParseLayout(lines, rows, cols)
}

func loadTextLayout(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan layout %s: %w", path, err)
	}

	// Drop trailing blank lines left by editors.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func loadJSONLayout(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var layout LayoutData
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout %s: %w", path, err)
	}
	return layout.Rows, nil
}

// ParseLayout converts text rows into a rows x cols jewel grid.
func ParseLayout(lines []string, rows, cols int) ([][]board.Jewel, error) {
	if len(lines) > rows {
		return nil, fmt.Errorf("layout has %d rows, board has %d", len(lines), rows)
	}

	grid := make([][]board.Jewel, rows)
	for r := range grid {
		grid[r] = make([]board.Jewel, cols)
	}

	offset := rows - len(lines)
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > cols {
			return nil, fmt.Errorf("layout row %d has %d columns, board has %d", i+1, len(runes), cols)
		}
		for c, ch := range runes {
			if ch == ' ' || ch == '.' {
				continue
			}
			jewel := board.Jewel(unicode.ToUpper(ch))
			if !slices.Contains(Jewels, jewel) {
				return nil, fmt.Errorf("unknown jewel %q at row %d, column %d", ch, i+1, c+1)
			}
			grid[offset+i][c] = jewel
		}
	}

	return grid, nil
}
