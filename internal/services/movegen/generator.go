package movegen

import (
	"sort"

	"github.com/mcoot/mnkgame/internal/dependencies/random"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/heuristic"
)

// Move is one candidate placement and the position it leads to
type Move struct {
	Index  int
	Board  *model.Board
	Status model.Status
	Score  float64
}

// Generator expands a position into scored, ordered candidate moves
type Generator struct {
	evaluator *heuristic.Evaluator
	random    random.Random
	shuffle   bool
}

// New creates a Generator. When shuffle is set, candidates with equal
// scores are visited in random order.
func New(evaluator *heuristic.Evaluator, rnd random.Random, shuffle bool) *Generator {
	return &Generator{
		evaluator: evaluator,
		random:    rnd,
		shuffle:   shuffle,
	}
}

// Generate returns the candidate moves for mover on board, best first for
// the mover. A positive limit keeps only that many candidates. The input
// board is not modified.
func (g *Generator) Generate(board *model.Board, mover, opponent model.Symbol, maximizing bool, limit int) []Move {
	moves := make([]Move, 0, board.EmptyCount())
	for i, c := range board.Cells {
		if c != model.Empty {
			continue
		}
		next := board.Clone()
		status := next.PlaceIndex(i, mover)

		var score float64
		if status.IsTerminal() {
			score = heuristic.TerminalScore(status, maximizing)
		} else {
			score = g.evaluator.Score(next, i, mover, opponent, maximizing)
		}
		moves = append(moves, Move{Index: i, Board: next, Status: status, Score: score})
	}

	if g.shuffle && g.random != nil {
		random.Shuffle(g.random, len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	if maximizing {
		sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score })
	} else {
		sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score < moves[j].Score })
	}

	if limit > 0 && len(moves) > limit {
		moves = moves[:limit]
	}
	return moves
}
