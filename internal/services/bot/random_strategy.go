package bot

import (
	"github.com/mcoot/mnkgame/internal/dependencies/random"
	"github.com/mcoot/mnkgame/internal/model"
)

// RandomStrategy picks a uniformly random empty cell
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePosition picks a random empty cell on the board
func (s *RandomStrategy) ChoosePosition(game *model.Game, seat int) model.Position {
	empty := game.Board.EmptyIndices()
	if len(empty) == 0 {
		return model.Position{}
	}
	return game.Board.PositionOf(empty[s.random.Intn(len(empty))])
}
