package agent

import (
	"log/slog"

	"github.com/mcoot/mnkgame/internal/dependencies/random"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/heuristic"
	"github.com/mcoot/mnkgame/internal/services/movegen"
	"github.com/mcoot/mnkgame/internal/services/search"
)

// Config holds the agent's settings
type Config struct {
	Symbol        model.Symbol
	Opponent      model.Symbol
	MaxCandidates int // 0 expands every legal move
	MaxDepth      int // plies, 0 searches to the end of the game
	Weights       heuristic.Weights
	Shuffle       bool // randomize the order of equally scored moves
	Workers       int  // root moves searched concurrently when > 1
}

// DefaultConfig returns an unbounded agent playing X against O
func DefaultConfig() Config {
	return Config{
		Symbol:   'X',
		Opponent: 'O',
		Weights:  heuristic.DefaultWeights(),
		Workers:  1,
	}
}

// Decision is the outcome of one Act call
type Decision struct {
	Position model.Position
	Index    int
	Score    float64
	Nodes    int64
}

// Agent chooses moves for one side of an m,n,k game
type Agent struct {
	config Config
	random random.Random
	logger *slog.Logger
	engine *search.Engine
}

// New creates an Agent
func New(config Config, rnd random.Random, logger *slog.Logger) *Agent {
	a := &Agent{
		config: config,
		random: rnd,
		logger: logger.With(slog.String("component", "agent")),
	}
	a.rebuild()
	return a
}

// Configure sets the symbols and search budget used by later Act calls
func (a *Agent) Configure(own, opponent model.Symbol, maxCandidates, maxDepth int) {
	a.config.Symbol = own
	a.config.Opponent = opponent
	a.config.MaxCandidates = maxCandidates
	a.config.MaxDepth = maxDepth
	a.rebuild()
}

// Config returns the agent's current settings
func (a *Agent) Config() Config {
	return a.config
}

func (a *Agent) rebuild() {
	generator := movegen.New(heuristic.New(a.config.Weights), a.random, a.config.Shuffle)
	a.engine = search.New(generator, search.Config{
		Symbol:        a.config.Symbol,
		Opponent:      a.config.Opponent,
		MaxCandidates: a.config.MaxCandidates,
		Workers:       a.config.Workers,
	})
}

// Act returns the cell the agent plays on board. The board is not modified.
// Panics with model.ErrNoLegalMoves if the board is full.
func (a *Agent) Act(board *model.Board) model.Position {
	return a.Decide(board).Position
}

// Decide searches board and returns the chosen move with its value
func (a *Agent) Decide(board *model.Board) Decision {
	result := a.engine.Search(board.Clone(), a.config.MaxDepth)
	decision := Decision{
		Position: board.PositionOf(result.Index),
		Index:    result.Index,
		Score:    result.Score,
		Nodes:    result.Nodes,
	}

	a.logger.Debug("chose move",
		slog.String("symbol", a.config.Symbol.String()),
		slog.Int("x", decision.Position.X),
		slog.Int("y", decision.Position.Y),
		slog.Float64("score", decision.Score),
		slog.Int64("nodes", decision.Nodes),
		slog.Int("max_candidates", a.config.MaxCandidates),
		slog.Int("max_depth", a.config.MaxDepth),
	)
	return decision
}
