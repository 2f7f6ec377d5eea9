package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/game"
)

// MaxBotIterations is a safety limit for the ProcessBotActions loop
const MaxBotIterations = 1000

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionPlace        BotActionType = "place"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during ProcessBotActions
type BotAction struct {
	Type     BotActionType
	Seat     int
	Position model.Position
	Status   model.Status
}

// Service plays the turns of computer-controlled seats
type Service struct {
	gameController *game.Controller
	strategies     map[model.SeatKind]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[model.SeatKind]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// ProcessBotActions plays bot turns in a cascading loop until the game ends
// or a human seat is to move. It returns every action taken.
func (s *Service) ProcessBotActions(ctx context.Context, gameID model.GameID) ([]BotAction, error) {
	var actions []BotAction

	for range MaxBotIterations {
		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		// Stop if game is finished
		if g.IsComplete() {
			if len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete, Seat: g.Winner})
			}
			break
		}

		seat := g.CurrentSeat()
		if !seat.IsBot() {
			break // Human's turn
		}

		strategy, ok := s.strategies[seat.Kind]
		if !ok {
			return actions, fmt.Errorf("no strategy for seat kind %q", seat.Kind)
		}

		pos := strategy.ChoosePosition(g, g.Current)
		g, err = s.gameController.PlayMove(ctx, gameID, g.Current, pos)
		if err != nil {
			return actions, err
		}

		last := g.LastTurn()
		s.logger.Debug("bot played",
			slog.String("game_id", string(gameID)),
			slog.String("seat", seat.Name),
			slog.Int("x", pos.X),
			slog.Int("y", pos.Y),
			slog.String("status", last.Status.String()),
		)
		actions = append(actions, BotAction{
			Type:     ActionPlace,
			Seat:     last.Seat,
			Position: pos,
			Status:   last.Status,
		})
	}

	return actions, nil
}
