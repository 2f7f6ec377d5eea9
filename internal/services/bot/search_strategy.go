package bot

import (
	"log/slog"

	"github.com/mcoot/mnkgame/internal/dependencies/random"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/agent"
	"github.com/mcoot/mnkgame/internal/services/heuristic"
)

// SearchOptions tunes the agent behind a SearchStrategy
type SearchOptions struct {
	Weights heuristic.Weights
	Shuffle bool
	Workers int
}

// DefaultSearchOptions returns the options used by computer seats
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Weights: heuristic.DefaultWeights(),
		Shuffle: true,
		Workers: 1,
	}
}

// SearchStrategy plays the agent's move using the seat's current budget
type SearchStrategy struct {
	random  random.Random
	options SearchOptions
	logger  *slog.Logger
}

// NewSearchStrategy creates a new SearchStrategy
func NewSearchStrategy(rnd random.Random, options SearchOptions, logger *slog.Logger) *SearchStrategy {
	return &SearchStrategy{
		random:  rnd,
		options: options,
		logger:  logger,
	}
}

// ChoosePosition runs a search for the seat on the game's board
func (s *SearchStrategy) ChoosePosition(game *model.Game, seat int) model.Position {
	return s.agentFor(game, seat).Act(game.Board)
}

// Decide is ChoosePosition with the search details attached
func (s *SearchStrategy) Decide(game *model.Game, seat int) agent.Decision {
	return s.agentFor(game, seat).Decide(game.Board)
}

func (s *SearchStrategy) agentFor(game *model.Game, seat int) *agent.Agent {
	own := game.Seats[seat]
	opp := game.Seats[model.OpponentOf(seat)]
	return agent.New(agent.Config{
		Symbol:        own.Symbol,
		Opponent:      opp.Symbol,
		MaxCandidates: own.MaxCandidates,
		MaxDepth:      own.MaxDepth,
		Weights:       s.options.Weights,
		Shuffle:       s.options.Shuffle,
		Workers:       s.options.Workers,
	}, s.random, s.logger)
}
