package cli

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mnkgame/internal/model"
)

type InputTestSuite struct {
	suite.Suite
}

func TestInputTestSuite(t *testing.T) {
	suite.Run(t, new(InputTestSuite))
}

func (s *InputTestSuite) TestParsePosition() {
	for _, input := range []string{"2 3", "2,3", " 2 ,  3 ", "2\t3"} {
		pos, err := ParsePosition(input)
		s.Require().NoError(err, input)
		s.Equal(model.Position{X: 1, Y: 2}, pos, input)
	}
}

func (s *InputTestSuite) TestParsePositionRejectsBadInput() {
	for _, input := range []string{"", "1", "1 2 3", "a 1", "1 b", "0 1", "1 0", "-1 2"} {
		_, err := ParsePosition(input)
		s.ErrorIs(err, model.ErrInvalidPosition, input)
	}
}

func (s *InputTestSuite) TestParseSymbol() {
	sym, err := parseSymbol("symbol", "Z")
	s.Require().NoError(err)
	s.Equal(model.Symbol('Z'), sym)

	_, err = parseSymbol("symbol", "XY")
	s.ErrorIs(err, model.ErrInvalidSymbol)

	_, err = parseSymbol("symbol", "")
	s.ErrorIs(err, model.ErrInvalidSymbol)

	for _, reserved := range []string{".", "_", "-", " "} {
		_, err = parseSymbol("symbol", reserved)
		s.Error(err, reserved)
	}
}

func (s *InputTestSuite) TestParseSeatKind() {
	kind, difficulty, err := parseSeatKind("human")
	s.Require().NoError(err)
	s.Equal(model.SeatHuman, kind)
	s.Empty(difficulty)

	kind, difficulty, err = parseSeatKind("random")
	s.Require().NoError(err)
	s.Equal(model.SeatRandom, kind)
	s.Empty(difficulty)

	kind, difficulty, err = parseSeatKind("computer")
	s.Require().NoError(err)
	s.Equal(model.SeatComputer, kind)
	s.Empty(difficulty)

	kind, difficulty, err = parseSeatKind("hard")
	s.Require().NoError(err)
	s.Equal(model.SeatComputer, kind)
	s.Equal(model.DifficultyHard, difficulty)

	_, _, err = parseSeatKind("impossible")
	s.ErrorIs(err, model.ErrUnknownDifficulty)
}

func (s *InputTestSuite) TestDefaultSeatName() {
	s.Equal("Player 1", defaultSeatName(model.SeatHuman, "", 0))
	s.Equal("Random 2", defaultSeatName(model.SeatRandom, "", 1))
	s.Equal("Computer 2 (Hard)", defaultSeatName(model.SeatComputer, model.DifficultyHard, 1))
	s.Equal("Computer 1 (Medium)", defaultSeatName(model.SeatComputer, "", 0))
}
