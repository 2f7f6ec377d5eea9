package search_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mnkgame/internal/dependencies/mocks"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/heuristic"
	"github.com/mcoot/mnkgame/internal/services/movegen"
	"github.com/mcoot/mnkgame/internal/services/search"
)

type EngineSuite struct {
	suite.Suite
	generator *movegen.Generator
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.generator = movegen.New(heuristic.New(heuristic.DefaultWeights()), mocks.NewMockRandom(), false)
}

func (s *EngineSuite) engine(own, opp model.Symbol, maxCandidates, workers int) *search.Engine {
	return search.New(s.generator, search.Config{
		Symbol:        own,
		Opponent:      opp,
		MaxCandidates: maxCandidates,
		Workers:       workers,
	})
}

func (s *EngineSuite) parse(notation string, k int) *model.Board {
	b, err := model.ParseBoard(notation, k)
	s.Require().NoError(err)
	return b
}

func (s *EngineSuite) TestForcedWin() {
	b := s.parse("X../.X./...", 3)
	for _, depth := range []int{1, 2, 3, 0} {
		result := s.engine('X', 'O', 0, 1).Search(b, depth)
		s.Equal(b.Index(2, 2), result.Index, "depth %d", depth)
		s.Equal(heuristic.WinScore, result.Score, "depth %d", depth)
	}
}

func (s *EngineSuite) TestForcedWinWithCap() {
	b := s.parse("X../.X./...", 3)
	result := s.engine('X', 'O', 2, 1).Search(b, 3)
	s.Equal(b.Index(2, 2), result.Index)
}

func (s *EngineSuite) TestForcedBlock() {
	b := s.parse(".../.O./O..", 3)
	for _, depth := range []int{1, 2, 0} {
		result := s.engine('X', 'O', 0, 1).Search(b, depth)
		s.Equal(b.Index(2, 0), result.Index, "depth %d", depth)
	}
}

func (s *EngineSuite) TestForcedBlockWithCap() {
	b := s.parse(".../.O./O..", 3)
	result := s.engine('X', 'O', 3, 1).Search(b, 2)
	s.Equal(b.Index(2, 0), result.Index)
}

func (s *EngineSuite) TestBlockRatherThanBuild() {
	// X can extend its own line, but O completes the middle row next turn
	b := s.parse("X.X/OO./...", 3)
	result := s.engine('X', 'O', 0, 1).Search(b, 2)
	// Winning immediately still beats blocking
	s.Equal(b.Index(1, 0), result.Index)

	b = s.parse("X../OO./..X", 3)
	result = s.engine('X', 'O', 0, 1).Search(b, 2)
	s.Equal(b.Index(2, 1), result.Index)
}

func (s *EngineSuite) TestLastMoveDrawScoresBetweenWins() {
	b := s.parse("XOX/XOO/OX.", 3)
	result := s.engine('X', 'O', 0, 1).Search(b, 0)
	s.Equal(8, result.Index)
	s.Equal(heuristic.DrawScore, result.Score)
	s.Less(-heuristic.WinScore, result.Score)
	s.Greater(heuristic.WinScore, result.Score)
}

func (s *EngineSuite) TestEmptyBoardIsADraw() {
	result := s.engine('X', 'O', 0, 1).Search(model.NewBoard(3, 3, 3), 0)
	s.Equal(heuristic.DrawScore, result.Score)
	s.Positive(result.Nodes)
}

func (s *EngineSuite) TestFullBoardPanics() {
	b := s.parse("XOX/XOO/OXX", 3)
	s.PanicsWithValue(model.ErrNoLegalMoves, func() {
		s.engine('X', 'O', 0, 1).Search(b, 2)
	})
	s.PanicsWithValue(model.ErrNoLegalMoves, func() {
		s.engine('X', 'O', 0, 1).Minimax(b, 2)
	})
}

func (s *EngineSuite) TestSearchDoesNotMutateBoard() {
	b := s.parse("X../.O./...", 3)
	s.engine('X', 'O', 0, 1).Search(b, 0)
	s.Equal("X../.O./...", b.String())
	s.Equal(2, b.Filled)
}

func (s *EngineSuite) TestPruningVisitsFewerNodes() {
	b := model.NewBoard(3, 3, 3)
	e := s.engine('X', 'O', 0, 1)
	pruned := e.Search(b, 0)
	full := e.Minimax(b, 0)
	s.Equal(full.Index, pruned.Index)
	s.Equal(full.Score, pruned.Score)
	s.Less(pruned.Nodes, full.Nodes)
}

// TestAlphaBetaMatchesMinimax compares both searches on every position
// reachable from the empty 3x3 board
func (s *EngineSuite) TestAlphaBetaMatchesMinimax() {
	if testing.Short() {
		s.T().Skip("exhaustive comparison")
	}
	engines := map[model.Symbol]*search.Engine{
		'X': s.engine('X', 'O', 0, 1),
		'O': s.engine('O', 'X', 0, 1),
	}

	seen := map[string]bool{}
	var visit func(b *model.Board, mover model.Symbol)
	visit = func(b *model.Board, mover model.Symbol) {
		key := b.String()
		if seen[key] {
			return
		}
		seen[key] = true

		// Openings are compared at a fixed depth to keep the run short
		depth := 0
		if b.Filled < 2 {
			depth = 4
		}
		e := engines[mover]
		pruned := e.Search(b, depth)
		full := e.Minimax(b, depth)
		s.Require().Equal(full.Index, pruned.Index, "board %s", key)
		s.Require().Equal(full.Score, pruned.Score, "board %s", key)

		next := model.Symbol('O')
		if mover == 'O' {
			next = 'X'
		}
		for _, i := range b.EmptyIndices() {
			child := b.Clone()
			if child.PlaceIndex(i, mover) == model.StatusContinue {
				visit(child, next)
			}
		}
	}
	visit(model.NewBoard(3, 3, 3), 'X')
	s.Greater(len(seen), 4000)
}

func (s *EngineSuite) TestCappedSearchMatchesMinimax() {
	b := s.parse("X../.O./...", 3)
	e := s.engine('X', 'O', 3, 1)
	pruned := e.Search(b, 4)
	full := e.Minimax(b, 4)
	s.Equal(full.Index, pruned.Index)
	s.Equal(full.Score, pruned.Score)
}

// TestCapMonotonicAtDepthOne checks that a wider cap never lowers the value
// of a one-ply search. Deeper searches also widen the opponent's replies, so
// the property only holds in general at depth 1.
func (s *EngineSuite) TestCapMonotonicAtDepthOne() {
	boards := []string{
		".../.../...",
		"X../.O./...",
		"OO./.X./...",
		"X...O/.O.../..X../...../.....",
	}
	for _, notation := range boards {
		k := 3
		b := s.parse(notation, k)
		prev := s.engine('X', 'O', 1, 1).Search(b, 1).Score
		for n := 2; n <= b.EmptyCount(); n++ {
			score := s.engine('X', 'O', n, 1).Search(b, 1).Score
			s.GreaterOrEqual(score, prev, "board %s cap %d", notation, n)
			prev = score
		}
	}
}

func (s *EngineSuite) TestParallelMatchesSequential() {
	boards := []string{
		".../.../...",
		"X../.O./...",
		".../.O./O..",
		"X.../.O../..../....",
	}
	for _, notation := range boards {
		b := s.parse(notation, 3)
		for _, depth := range []int{1, 2, 3} {
			seq := s.engine('X', 'O', 0, 1).Search(b, depth)
			par := s.engine('X', 'O', 0, 4).Search(b, depth)
			s.Equal(seq.Index, par.Index, "board %s depth %d", notation, depth)
			s.Equal(seq.Score, par.Score, "board %s depth %d", notation, depth)
		}
	}
}

func (s *EngineSuite) TestLargerBoardFindsWin() {
	b := s.parse("XXX../OO.../...../...../.....", 4)
	result := s.engine('X', 'O', 6, 2).Search(b, 3)
	s.Equal(b.Index(3, 0), result.Index)
	s.Equal(heuristic.WinScore, result.Score)
}
