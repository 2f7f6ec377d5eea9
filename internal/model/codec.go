package model

import (
	"fmt"
	"strings"
)

// RowSeparator separates rows in the compact board notation
const RowSeparator = "/"

// ParseBoard reads the compact notation produced by Board.String, e.g.
// "X.O/.X./..." for a 3x3 board. '.', '_' and '-' mark empty cells.
func ParseBoard(notation string, winLength int) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(notation), RowSeparator)
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidNotation)
	}

	width := len([]rune(rows[0]))
	board := NewBoard(width, len(rows), winLength)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, y, len(cells), width)
		}
		for x, r := range cells {
			switch r {
			case '.', '_', '-':
				continue
			case ' ':
				return nil, fmt.Errorf("%w: blank at row %d col %d", ErrInvalidNotation, y, x)
			}
			board.Cells[board.Index(x, y)] = Symbol(r)
			board.Filled++
		}
	}
	return board, nil
}

// String renders the board in compact notation
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteString(RowSeparator)
		}
		for _, c := range b.Row(y) {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// Count returns the number of cells holding symbol
func (b *Board) Count(symbol Symbol) int {
	n := 0
	for _, c := range b.Cells {
		if c == symbol {
			n++
		}
	}
	return n
}

// Winner scans the whole board and returns a symbol with K in a row, or Empty
func (b *Board) Winner() Symbol {
	for i, c := range b.Cells {
		if c == Empty {
			continue
		}
		x, y := b.Coord(i)
		for _, axis := range Axes {
			if b.Run(x, y, c, axis) >= b.WinLength {
				return c
			}
		}
	}
	return Empty
}
