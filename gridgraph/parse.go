package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a digit grid: one row per line, one decimal digit per
// cell, no separators. A trailing "\r" on each line is dropped and blank
// lines before the first or after the last row are ignored. Blank lines
// between rows make the grid non-rectangular.
//
// Returns ErrBadDigit for any other character, plus every error
// NewCostGrid can return. Read errors are returned wrapped.
func ParseDigits(r io.Reader) (*CostGrid, error) {
	var rows [][]int
	blank := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		// A blank line followed by more rows is a hole in the grid;
		// leading blank lines are skipped.
		for ; blank > 0 && len(rows) > 0; blank-- {
			rows = append(rows, nil)
		}
		blank = 0
		row := make([]int, len(text))
		for col := 0; col < len(text); col++ {
			ch := text[col]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadDigit, line, col+1, ch)
			}
			row[col] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading digit grid: %w", err)
	}

	return NewCostGrid(rows)
}
