package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mnkgame/internal/model"
)

type OutputTestSuite struct {
	suite.Suite
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func TestOutputTestSuite(t *testing.T) {
	suite.Run(t, new(OutputTestSuite))
}

func (s *OutputTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
}

func (s *OutputTestSuite) game() *model.Game {
	board, err := model.ParseBoard("XX./OO./...", 3)
	s.Require().NoError(err)
	return &model.Game{
		ID:    "game-1",
		State: model.GameStateInProgress,
		Board: board,
		Seats: [2]model.Seat{
			{Name: "Alice", Symbol: 'X', Kind: model.SeatHuman},
			{Name: "Bot", Symbol: 'O', Kind: model.SeatComputer, Difficulty: model.DifficultyEasy, MaxCandidates: 5, MaxDepth: 2},
		},
		Winner: model.NoSeat,
		Turns: []model.TurnRecord{
			{Turn: 1, Seat: 0, Position: model.Position{X: 0, Y: 0}, Elapsed: 2 * time.Second},
			{Turn: 2, Seat: 1, Position: model.Position{X: 0, Y: 1}, Elapsed: 15 * time.Millisecond},
			{Turn: 3, Seat: 0, Position: model.Position{X: 1, Y: 0}, Elapsed: time.Second},
			{Turn: 4, Seat: 1, Position: model.Position{X: 1, Y: 1}, Elapsed: 20 * time.Millisecond},
		},
	}
}

func (s *OutputTestSuite) TestNewGameView() {
	v := NewGameView(s.game())

	s.Equal("game-1", v.ID)
	s.Equal([]string{"XX.", "OO.", "..."}, v.Rows)
	s.Equal("Alice", v.ToMove)
	s.Empty(v.Winner)
	s.Require().Len(v.Turns, 4)
	s.Equal(TurnView{Turn: 2, Seat: "Bot", Column: 1, Line: 2, Status: "continue", ElapsedMS: 15}, v.Turns[1])
	s.Equal("easy", v.Seats[1].Difficulty)
	s.Equal(5, v.Seats[1].MaxCandidates)
}

func (s *OutputTestSuite) TestPrintGameText() {
	o := NewOutput("text", s.out, s.errOut, false)
	o.Print(NewGameView(s.game()))

	text := s.out.String()
	s.Contains(text, "Game: game-1")
	s.Contains(text, "Board: 3x3, 3 in a row")
	s.Contains(text, "X: Alice (human)")
	s.Contains(text, "O: Bot (computer, Easy)")
	s.Contains(text, "  1 |  X  X  . |")
	s.Contains(text, "  2 |  O  O  . |")
	s.Contains(text, "Turn 4: Bot played 2 2 (20ms)")
}

func (s *OutputTestSuite) TestPrintGameWinner() {
	g := s.game()
	g.Board.Place(2, 0, 'X')
	g.State = model.GameStateWon
	g.Winner = 0
	g.Turns = append(g.Turns, model.TurnRecord{Turn: 5, Seat: 0, Position: model.Position{X: 2, Y: 0}, Status: model.StatusWin})

	o := NewOutput("text", s.out, s.errOut, false)
	o.Print(NewGameView(g))

	s.Contains(s.out.String(), "Alice wins after 5 turns!")
}

func (s *OutputTestSuite) TestPrintGameJSON() {
	o := NewOutput("json", s.out, s.errOut, false)
	o.Print(NewGameView(s.game()))

	var got map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &got))
	s.Equal("game-1", got["id"])
	s.Equal("Alice", got["to_move"])
	s.NotContains(got, "winner")
}

func (s *OutputTestSuite) TestPrintGameListEmpty() {
	o := NewOutput("text", s.out, s.errOut, false)
	o.Print([]GameSummary{})
	s.Equal("No games\n", s.out.String())
}

func (s *OutputTestSuite) TestNewGameSummary() {
	sum := NewGameSummary(s.game())
	s.Equal("3x3 k=3", sum.Size)
	s.Equal("Alice vs Bot", sum.Players)
	s.Equal(4, sum.Turns)
}

func (s *OutputTestSuite) TestPrintSelfPlayReport() {
	o := NewOutput("text", s.out, s.errOut, false)
	o.Print(SelfPlayReport{
		Games:     4,
		Wins:      map[string]int{"B": 1, "A": 2},
		Draws:     1,
		AvgTurns:  6.5,
		ElapsedMS: 1500,
	})

	s.Equal("Games: 4\n  A wins: 2\n  B wins: 1\n  Draws: 1\nAverage turns: 6.5\nElapsed: 1.5s\n", s.out.String())
}

func (s *OutputTestSuite) TestPrintError() {
	o := NewOutput("text", s.out, s.errOut, false)
	o.PrintError(errors.New("boom"))
	s.Equal("Error: boom\n", s.errOut.String())

	s.errOut.Reset()
	o = NewOutput("json", s.out, s.errOut, false)
	o.PrintError(errors.New("boom"))
	s.JSONEq(`{"error":{"message":"boom"}}`, s.errOut.String())
}

func (s *OutputTestSuite) TestPromptSilentInJSON() {
	NewOutput("json", s.out, s.errOut, false).Prompt("Move: ")
	s.Empty(s.out.String())

	NewOutput("text", s.out, s.errOut, false).Prompt("Move: ")
	s.Equal("Move: ", s.out.String())
}
