package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mnkgame/internal/model"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	b := model.NewBoard(4, 3, 3)
	s.Equal(12, b.Size())
	s.Equal(0, b.Filled)
	s.Equal(12, b.EmptyCount())
	s.False(b.IsFull())
	for i := 0; i < b.Size(); i++ {
		s.Equal(model.Empty, b.Cells[i])
	}
}

func (s *BoardSuite) TestIndexCoordRoundTrip() {
	b := model.NewBoard(5, 4, 3)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := b.Index(x, y)
			gx, gy := b.Coord(i)
			s.Equal(x, gx)
			s.Equal(y, gy)
			s.Equal(model.Position{X: x, Y: y}, b.PositionOf(i))
		}
	}
	s.Equal(7, b.Index(2, 1))
}

func (s *BoardSuite) TestPlaceContinue() {
	b := model.NewBoard(3, 3, 3)
	s.Equal(model.StatusContinue, b.Place(1, 1, 'X'))
	s.Equal(model.Symbol('X'), b.Get(1, 1))
	s.Equal(1, b.Filled)
}

func (s *BoardSuite) TestPlaceOccupiedIsInvalid() {
	b := model.NewBoard(3, 3, 3)
	b.Place(0, 0, 'X')
	s.Equal(model.StatusInvalid, b.Place(0, 0, 'O'))
	s.Equal(model.Symbol('X'), b.Get(0, 0))
	s.Equal(1, b.Filled)
}

func (s *BoardSuite) TestPlaceOutOfBoundsIsInvalid() {
	b := model.NewBoard(3, 3, 3)
	s.Equal(model.StatusInvalid, b.Place(3, 0, 'X'))
	s.Equal(model.StatusInvalid, b.Place(0, -1, 'X'))
	s.Equal(model.StatusInvalid, b.PlaceIndex(9, 'X'))
	s.Equal(model.StatusInvalid, b.PlaceIndex(0, model.Empty))
	s.Equal(0, b.Filled)
}

func (s *BoardSuite) TestWinOnEveryAxis() {
	cases := []struct {
		name  string
		cells []model.Position
	}{
		{"horizontal", []model.Position{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}},
		{"vertical", []model.Position{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
		{"diagonal", []model.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"anti-diagonal", []model.Position{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			// The completing cell is placed in every possible order so the
			// scan works from either end and from the middle
			for last := range tc.cells {
				b := model.NewBoard(3, 3, 3)
				for i, p := range tc.cells {
					if i != last {
						s.Equal(model.StatusContinue, b.Place(p.X, p.Y, 'X'))
					}
				}
				p := tc.cells[last]
				s.Equal(model.StatusWin, b.Place(p.X, p.Y, 'X'))
				s.Equal(model.Symbol('X'), b.Winner())
			}
		})
	}
}

func (s *BoardSuite) TestNoWinWithGap() {
	b := model.NewBoard(5, 1, 3)
	b.Place(0, 0, 'X')
	b.Place(1, 0, 'X')
	b.Place(2, 0, 'O')
	s.Equal(model.StatusContinue, b.Place(3, 0, 'X'))
	s.Equal(model.Empty, b.Winner())
}

func (s *BoardSuite) TestLongerRunStillWins() {
	b := model.NewBoard(7, 1, 3)
	for _, x := range []int{0, 1, 3, 4} {
		s.Equal(model.StatusContinue, b.Place(x, 0, 'X'))
	}
	s.Equal(model.StatusWin, b.Place(2, 0, 'X'))
}

func (s *BoardSuite) TestDraw() {
	// X O X
	// X O O
	// O X X
	b := model.NewBoard(3, 3, 3)
	moves := []struct {
		x, y int
		sym  model.Symbol
	}{
		{0, 0, 'X'}, {1, 0, 'O'}, {2, 0, 'X'},
		{0, 1, 'X'}, {1, 1, 'O'}, {2, 1, 'O'},
		{0, 2, 'O'}, {1, 2, 'X'},
	}
	for _, m := range moves {
		s.Equal(model.StatusContinue, b.Place(m.x, m.y, m.sym))
	}
	s.Equal(model.StatusDraw, b.Place(2, 2, 'X'))
	s.True(b.IsFull())
	s.Equal(model.Empty, b.Winner())
}

func (s *BoardSuite) TestWinOnLastCellIsWinNotDraw() {
	b, err := model.ParseBoard("XOX/OXO/OX.", 3)
	s.Require().NoError(err)
	s.Equal(model.StatusWin, b.Place(2, 2, 'X'))
	s.True(b.IsFull())
}

func (s *BoardSuite) TestWinLengthOne() {
	b := model.NewBoard(2, 2, 1)
	s.Equal(model.StatusWin, b.Place(1, 1, 'O'))
}

func (s *BoardSuite) TestCloneIsIndependent() {
	b := model.NewBoard(3, 3, 3)
	b.Place(0, 0, 'X')
	c := b.Clone()
	c.Place(1, 1, 'O')

	s.Equal(model.Empty, b.Get(1, 1))
	s.Equal(1, b.Filled)
	s.Equal(2, c.Filled)
	s.Equal(model.Symbol('X'), c.Get(0, 0))
}

func (s *BoardSuite) TestClear() {
	b, err := model.ParseBoard("XO./.X./..O", 3)
	s.Require().NoError(err)
	b.Clear()
	s.Equal(0, b.Filled)
	s.Equal(".../.../...", b.String())
	s.Equal(model.StatusContinue, b.Place(0, 0, 'O'))
}

func (s *BoardSuite) TestEmptyIndices() {
	b, err := model.ParseBoard("X.O/.X.", 3)
	s.Require().NoError(err)
	s.Equal([]int{1, 3, 5}, b.EmptyIndices())
}

func (s *BoardSuite) TestGetOutOfBoundsIsEmpty() {
	b := model.NewBoard(2, 2, 2)
	s.Equal(model.Empty, b.Get(-1, 0))
	s.Equal(model.Empty, b.Get(0, 2))
	s.False(b.IsEmpty(2, 0))
}

func (s *BoardSuite) TestRowCopies() {
	b, err := model.ParseBoard("XO/.X", 2)
	s.Require().NoError(err)
	row := b.Row(0)
	s.Equal([]model.Symbol{'X', 'O'}, row)
	row[0] = 'Z'
	s.Equal(model.Symbol('X'), b.Get(0, 0))
	s.Nil(b.Row(2))
}

func (s *BoardSuite) TestSymbolText() {
	var sym model.Symbol
	s.Require().NoError(sym.UnmarshalText([]byte("Ω")))
	s.Equal(model.Symbol('Ω'), sym)
	s.Equal("Ω", sym.String())

	s.ErrorIs(sym.UnmarshalText([]byte("XO")), model.ErrInvalidSymbol)

	text, err := model.Empty.MarshalText()
	s.Require().NoError(err)
	s.Empty(text)
	s.Equal(".", model.Empty.String())
}

func (s *BoardSuite) TestStatus() {
	s.True(model.StatusWin.IsTerminal())
	s.True(model.StatusDraw.IsTerminal())
	s.False(model.StatusContinue.IsTerminal())
	s.False(model.StatusInvalid.IsTerminal())

	var st model.Status
	s.Require().NoError(st.UnmarshalText([]byte("draw")))
	s.Equal(model.StatusDraw, st)
	s.ErrorIs(st.UnmarshalText([]byte("lost")), model.ErrUnknownStatus)
}
