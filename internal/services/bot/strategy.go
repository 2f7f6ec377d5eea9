package bot

import "github.com/mcoot/mnkgame/internal/model"

// Strategy defines how a bot chooses where to play
type Strategy interface {
	// ChoosePosition selects an empty cell for the given seat
	ChoosePosition(game *model.Game, seat int) model.Position
}
