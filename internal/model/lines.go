package model

// Axis is one of the four line directions through a cell
type Axis int

const (
	Horizontal   Axis = iota // -
	Vertical                 // |
	Diagonal                 // \ (down-right)
	AntiDiagonal             // / (up-right)
)

// Axes lists every axis in scan order
var Axes = [4]Axis{Horizontal, Vertical, Diagonal, AntiDiagonal}

// Delta returns the unit step of the axis in its positive direction
func (a Axis) Delta() (int, int) {
	switch a {
	case Horizontal:
		return 1, 0
	case Vertical:
		return 0, 1
	case Diagonal:
		return 1, 1
	default:
		return 1, -1
	}
}

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}

// Stretch describes how far a line through a cell could still grow for a symbol
type Stretch struct {
	Length int // cells holding the symbol or empty, origin included
	Count  int // cells holding the symbol, origin counted once
}

// Winnable returns true if the stretch is long enough for K in a row
func (s Stretch) Winnable(k int) bool {
	return s.Length >= k
}

// Run counts the contiguous cells equal to symbol through (x, y) along axis.
// The origin is counted; each direction stops after K-1 steps.
func (b *Board) Run(x, y int, symbol Symbol, axis Axis) int {
	dx, dy := axis.Delta()
	return 1 + b.runFrom(x, y, dx, dy, symbol) + b.runFrom(x, y, -dx, -dy, symbol)
}

func (b *Board) runFrom(x, y, dx, dy int, symbol Symbol) int {
	count := 0
	for step := 1; step < b.WinLength; step++ {
		cx, cy := x+dx*step, y+dy*step
		if !b.InBounds(cx, cy) || b.Cells[b.Index(cx, cy)] != symbol {
			break
		}
		count++
	}
	return count
}

// Stretch scans the cells through (x, y) along axis that are symbol or empty
func (b *Board) Stretch(x, y int, symbol Symbol, axis Axis) Stretch {
	dx, dy := axis.Delta()
	result := Stretch{Length: 1, Count: 1}
	b.stretchFrom(x, y, dx, dy, symbol, &result)
	b.stretchFrom(x, y, -dx, -dy, symbol, &result)
	return result
}

func (b *Board) stretchFrom(x, y, dx, dy int, symbol Symbol, result *Stretch) {
	for step := 1; step < b.WinLength; step++ {
		cx, cy := x+dx*step, y+dy*step
		if !b.InBounds(cx, cy) {
			return
		}
		cell := b.Cells[b.Index(cx, cy)]
		if cell != symbol && cell != Empty {
			return
		}
		result.Length++
		if cell == symbol {
			result.Count++
		}
	}
}

// Openness counts the empty cells among the 8 neighbours of (x, y)
func (b *Board) Openness(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.IsEmpty(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// AvailableAxes counts the axes through (x, y) on which symbol can still reach K
func (b *Board) AvailableAxes(x, y int, symbol Symbol) int {
	count := 0
	for _, axis := range Axes {
		if b.Stretch(x, y, symbol, axis).Winnable(b.WinLength) {
			count++
		}
	}
	return count
}

// Support reports, per axis, how many of symbol's cells other than (x, y)
// sit in symbol's winnable stretch through (x, y). Axes where symbol can no
// longer reach K report 0.
func (b *Board) Support(x, y int, symbol Symbol) [4]int {
	var support [4]int
	for i, axis := range Axes {
		s := b.Stretch(x, y, symbol, axis)
		if s.Winnable(b.WinLength) {
			support[i] = s.Count - 1
		}
	}
	return support
}

// Blocked reports, per axis, how many opponent cells a symbol placed at
// (x, y) cuts off from the opponent's winnable stretch
func (b *Board) Blocked(x, y int, opponent Symbol) [4]int {
	return b.Support(x, y, opponent)
}

// OnEdge returns true if (x, y) touches a border of the board
func (b *Board) OnEdge(x, y int) bool {
	return x == 0 || y == 0 || x == b.Width-1 || y == b.Height-1
}

// IsCorner returns true if (x, y) is one of the four corners
func (b *Board) IsCorner(x, y int) bool {
	return (x == 0 || x == b.Width-1) && (y == 0 || y == b.Height-1)
}
