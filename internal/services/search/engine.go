package search

import (
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/movegen"
)

// Result is the move chosen by a search and its backed-up value
type Result struct {
	Index int
	Score float64
	Nodes int64 // positions generated while searching
}

// Config holds the per-engine search settings
type Config struct {
	Symbol        model.Symbol // the maximizing side
	Opponent      model.Symbol
	MaxCandidates int // 0 expands every legal move
	Workers       int // root children searched concurrently when > 1
}

// Engine runs depth-limited alpha-beta search for one side
type Engine struct {
	generator *movegen.Generator
	config    Config
}

// New creates an Engine that expands positions with generator
func New(generator *movegen.Generator, config Config) *Engine {
	return &Engine{
		generator: generator,
		config:    config,
	}
}

// Config returns the engine's settings
func (e *Engine) Config() Config {
	return e.config
}

// Search picks the best move for the engine's side on board, looking depth
// plies ahead. A depth of 0 or less searches to the end of the game.
// Panics with model.ErrNoLegalMoves if the board has no empty cell.
func (e *Engine) Search(board *model.Board, depth int) Result {
	if depth <= 0 {
		depth = board.EmptyCount()
	}
	moves := e.generator.Generate(board, e.config.Symbol, e.config.Opponent, true, e.config.MaxCandidates)
	if len(moves) == 0 {
		panic(model.ErrNoLegalMoves)
	}

	var nodes atomic.Int64
	nodes.Add(int64(len(moves)))

	var result Result
	if e.config.Workers > 1 && len(moves) > 1 && depth > 1 {
		result = e.searchParallel(moves, depth, &nodes)
	} else {
		result = e.searchSequential(moves, depth, &nodes)
	}
	result.Nodes = nodes.Load()
	return result
}

func (e *Engine) searchSequential(moves []movegen.Move, depth int, nodes *atomic.Int64) Result {
	best := Result{Index: moves[0].Index, Score: math.Inf(-1)}
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i := range moves {
		v := e.alphaBeta(&moves[i], false, depth-1, alpha, beta, nodes)
		if v > best.Score {
			best.Score = v
			best.Index = moves[i].Index
		}
		alpha = math.Max(alpha, best.Score)
	}
	return best
}

// searchParallel scores every root child with a full window, then selects
// exactly as the sequential loop would
func (e *Engine) searchParallel(moves []movegen.Move, depth int, nodes *atomic.Int64) Result {
	values := make([]float64, len(moves))

	var g errgroup.Group
	g.SetLimit(e.config.Workers)
	for i := range moves {
		g.Go(func() error {
			values[i] = e.alphaBeta(&moves[i], false, depth-1, math.Inf(-1), math.Inf(1), nodes)
			return nil
		})
	}
	_ = g.Wait()

	best := Result{Index: moves[0].Index, Score: math.Inf(-1)}
	for i, v := range values {
		if v > best.Score {
			best.Score = v
			best.Index = moves[i].Index
		}
	}
	return best
}

// alphaBeta returns the value of the position reached by move. maximizing
// says whether the side to move next is the engine's side.
func (e *Engine) alphaBeta(move *movegen.Move, maximizing bool, depth int, alpha, beta float64, nodes *atomic.Int64) float64 {
	if depth <= 0 || move.Status != model.StatusContinue {
		return move.Score
	}

	children := e.expand(move.Board, maximizing)
	nodes.Add(int64(len(children)))

	if maximizing {
		best := math.Inf(-1)
		for i := range children {
			v := e.alphaBeta(&children[i], false, depth-1, alpha, beta, nodes)
			if v > best {
				best = v
			}
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for i := range children {
		v := e.alphaBeta(&children[i], true, depth-1, alpha, beta, nodes)
		if v < best {
			best = v
		}
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// Minimax runs the same search without pruning. It visits every node the
// generator produces and is meant as a reference for Search.
func (e *Engine) Minimax(board *model.Board, depth int) Result {
	if depth <= 0 {
		depth = board.EmptyCount()
	}
	moves := e.generator.Generate(board, e.config.Symbol, e.config.Opponent, true, e.config.MaxCandidates)
	if len(moves) == 0 {
		panic(model.ErrNoLegalMoves)
	}

	var nodes atomic.Int64
	nodes.Add(int64(len(moves)))
	best := Result{Index: moves[0].Index, Score: math.Inf(-1)}
	for i := range moves {
		v := e.minimax(&moves[i], false, depth-1, &nodes)
		if v > best.Score {
			best.Score = v
			best.Index = moves[i].Index
		}
	}
	best.Nodes = nodes.Load()
	return best
}

func (e *Engine) minimax(move *movegen.Move, maximizing bool, depth int, nodes *atomic.Int64) float64 {
	if depth <= 0 || move.Status != model.StatusContinue {
		return move.Score
	}

	children := e.expand(move.Board, maximizing)
	nodes.Add(int64(len(children)))

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for i := range children {
		v := e.minimax(&children[i], !maximizing, depth-1, nodes)
		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}
	return best
}

func (e *Engine) expand(board *model.Board, maximizing bool) []movegen.Move {
	mover, opponent := e.config.Symbol, e.config.Opponent
	if !maximizing {
		mover, opponent = opponent, mover
	}
	return e.generator.Generate(board, mover, opponent, maximizing, e.config.MaxCandidates)
}
