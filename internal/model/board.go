package model

// Symbol is a player marker placed on the board
type Symbol rune

// Empty marks an unoccupied cell
const Empty Symbol = 0

// String returns the symbol as text, "." for an empty cell
func (s Symbol) String() string {
	if s == Empty {
		return "."
	}
	return string(rune(s))
}

// MarshalText encodes the symbol as a string, empty for an empty cell
func (s Symbol) MarshalText() ([]byte, error) {
	if s == Empty {
		return []byte{}, nil
	}
	return []byte(string(rune(s))), nil
}

// UnmarshalText decodes a single-character symbol
func (s *Symbol) UnmarshalText(text []byte) error {
	runes := []rune(string(text))
	switch len(runes) {
	case 0:
		*s = Empty
	case 1:
		*s = Symbol(runes[0])
	default:
		return ErrInvalidSymbol
	}
	return nil
}

// Position identifies a cell on the board
type Position struct {
	X int // column, 0-indexed from left
	Y int // row, 0-indexed from top
}

// Board is a W x H grid where K in a row wins
type Board struct {
	Width     int
	Height    int
	WinLength int
	Cells     []Symbol // Row-major: Cells[x + y*Width]
	Filled    int
}

// NewBoard creates an empty board. winLength is not validated here.
func NewBoard(width, height, winLength int) *Board {
	return &Board{
		Width:     width,
		Height:    height,
		WinLength: winLength,
		Cells:     make([]Symbol, width*height),
	}
}

// Size returns the number of cells
func (b *Board) Size() int {
	return len(b.Cells)
}

// Index maps a coordinate to its flat index
func (b *Board) Index(x, y int) int {
	return x + y*b.Width
}

// Coord maps a flat index back to its coordinate
func (b *Board) Coord(i int) (int, int) {
	return i % b.Width, i / b.Width
}

// PositionOf returns the Position for a flat index
func (b *Board) PositionOf(i int) Position {
	x, y := b.Coord(i)
	return Position{X: x, Y: y}
}

// InBounds returns true if the coordinate is on the board
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get returns the symbol at (x, y), or Empty when out of bounds
func (b *Board) Get(x, y int) Symbol {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.Cells[b.Index(x, y)]
}

// IsEmpty returns true if the cell at (x, y) is on the board and unoccupied
func (b *Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.Cells[b.Index(x, y)] == Empty
}

// IsFull returns true if every cell is occupied
func (b *Board) IsFull() bool {
	return b.Filled == len(b.Cells)
}

// EmptyCount returns the number of unoccupied cells
func (b *Board) EmptyCount() int {
	return len(b.Cells) - b.Filled
}

// Place puts symbol at (x, y) and reports the resulting status
func (b *Board) Place(x, y int, symbol Symbol) Status {
	if !b.InBounds(x, y) {
		return StatusInvalid
	}
	return b.PlaceIndex(b.Index(x, y), symbol)
}

// PlaceIndex puts symbol at flat index i and reports the resulting status.
// Placing on an occupied cell leaves the board untouched.
func (b *Board) PlaceIndex(i int, symbol Symbol) Status {
	if i < 0 || i >= len(b.Cells) || symbol == Empty || b.Cells[i] != Empty {
		return StatusInvalid
	}
	b.Cells[i] = symbol
	b.Filled++
	x, y := b.Coord(i)
	return b.statusAt(x, y, symbol)
}

// statusAt evaluates game over around the cell that was just filled
func (b *Board) statusAt(x, y int, symbol Symbol) Status {
	// A line of K needs at least K filled cells
	if b.Filled >= b.WinLength {
		for _, axis := range Axes {
			if b.Run(x, y, symbol, axis) >= b.WinLength {
				return StatusWin
			}
		}
	}
	if b.IsFull() {
		return StatusDraw
	}
	return StatusContinue
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Symbol, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		Width:     b.Width,
		Height:    b.Height,
		WinLength: b.WinLength,
		Cells:     cells,
		Filled:    b.Filled,
	}
}

// Clear empties every cell
func (b *Board) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Empty
	}
	b.Filled = 0
}

// EmptyIndices returns the flat indices of all unoccupied cells in order
func (b *Board) EmptyIndices() []int {
	result := make([]int, 0, b.EmptyCount())
	for i, c := range b.Cells {
		if c == Empty {
			result = append(result, i)
		}
	}
	return result
}

// Row returns a copy of the symbols in row y
func (b *Board) Row(y int) []Symbol {
	if y < 0 || y >= b.Height {
		return nil
	}
	result := make([]Symbol, b.Width)
	copy(result, b.Cells[y*b.Width:(y+1)*b.Width])
	return result
}
