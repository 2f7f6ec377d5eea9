package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/mnkgame/internal/dependencies/clock"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/storage"
)

// Default symbols for the two seats
const (
	DefaultFirstSymbol  model.Symbol = 'X'
	DefaultSecondSymbol model.Symbol = 'O'
)

// SeatParams describes one seat of a new game
type SeatParams struct {
	Name       string
	Symbol     model.Symbol // defaults to X / O by seat
	Kind       model.SeatKind
	Difficulty string // computer seats only
}

// CreateGameParams describes a new game
type CreateGameParams struct {
	Width     int
	Height    int
	WinLength int
	Seats     [2]SeatParams
	FirstSeat int
}

// Controller manages game state and turn flow
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame validates the parameters and saves a new game
func (c *Controller) CreateGame(ctx context.Context, params CreateGameParams) (*model.Game, error) {
	if err := validateDimensions(params.Width, params.Height, params.WinLength); err != nil {
		return nil, err
	}
	if params.FirstSeat != 0 && params.FirstSeat != 1 {
		return nil, fmt.Errorf("%w: first seat must be 0 or 1", model.ErrInvalidGameConfig)
	}

	var seats [2]model.Seat
	defaults := [2]model.Symbol{DefaultFirstSymbol, DefaultSecondSymbol}
	for i, sp := range params.Seats {
		seat, err := newSeat(sp, defaults[i], i)
		if err != nil {
			return nil, err
		}
		seats[i] = seat
	}
	if seats[0].Symbol == seats[1].Symbol {
		return nil, fmt.Errorf("%w: both seats use %q", model.ErrInvalidGameConfig, seats[0].Symbol.String())
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:            model.GameID(uuid.NewString()),
		State:         model.GameStateInProgress,
		Board:         model.NewBoard(params.Width, params.Height, params.WinLength),
		Seats:         seats,
		FirstSeat:     params.FirstSeat,
		Current:       params.FirstSeat,
		Winner:        model.NoSeat,
		TurnStartedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("width", params.Width),
		slog.Int("height", params.Height),
		slog.Int("win_length", params.WinLength),
		slog.String("first", game.Seats[game.FirstSeat].Name),
	)

	return game, nil
}

func validateDimensions(width, height, winLength int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", model.ErrInvalidGameConfig, width, height)
	}
	if winLength < 1 || winLength > max(width, height) {
		return fmt.Errorf("%w: win length %d must be between 1 and %d", model.ErrInvalidGameConfig, winLength, max(width, height))
	}
	return nil
}

func newSeat(sp SeatParams, defaultSymbol model.Symbol, index int) (model.Seat, error) {
	seat := model.Seat{
		Name:   sp.Name,
		Symbol: sp.Symbol,
		Kind:   sp.Kind,
	}
	if seat.Symbol == model.Empty {
		seat.Symbol = defaultSymbol
	}
	if seat.Name == "" {
		seat.Name = fmt.Sprintf("Player %d", index+1)
	}

	switch sp.Kind {
	case model.SeatHuman, model.SeatRandom:
	case model.SeatComputer:
		name := sp.Difficulty
		if name == "" {
			name = model.DifficultyMedium
		}
		d, err := model.LookupDifficulty(name)
		if err != nil {
			return model.Seat{}, err
		}
		seat.Difficulty = d.Name
		seat.MaxCandidates = d.MaxCandidates
		seat.MaxDepth = d.MaxDepth
		seat.CapGrowth = d.CapGrowth
	default:
		return model.Seat{}, fmt.Errorf("%w: unknown seat kind %q", model.ErrInvalidGameConfig, sp.Kind)
	}
	return seat, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns every stored game, oldest first
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// PlayMove places the seat's symbol at pos and advances the game
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, seat int, pos model.Position) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	// Validate game state
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	if seat != game.Current {
		return nil, model.ErrNotPlayerTurn
	}

	// Validate target cell
	if !game.Board.InBounds(pos.X, pos.Y) {
		return nil, fmt.Errorf("%w: (%d, %d)", model.ErrInvalidPosition, pos.X, pos.Y)
	}
	if !game.Board.IsEmpty(pos.X, pos.Y) {
		return nil, fmt.Errorf("%w: (%d, %d)", model.ErrCellOccupied, pos.X, pos.Y)
	}

	mover := game.CurrentSeat()
	status := game.Board.Place(pos.X, pos.Y, mover.Symbol)

	now := c.clock.Now()
	game.Turns = append(game.Turns, model.TurnRecord{
		Turn:     len(game.Turns) + 1,
		Seat:     seat,
		Position: pos,
		Status:   status,
		Elapsed:  now.Sub(game.TurnStartedAt),
		PlayedAt: now,
	})

	// Capped computer seats widen their search after every turn
	if mover.Kind == model.SeatComputer && mover.MaxCandidates > 0 {
		mover.MaxCandidates += mover.CapGrowth
	}

	switch status {
	case model.StatusWin:
		game.State = model.GameStateWon
		game.Winner = seat
		c.logger.Info("game won",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", mover.Name),
			slog.Int("turns", len(game.Turns)),
		)
	case model.StatusDraw:
		game.State = model.GameStateDrawn
		c.logger.Info("game drawn",
			slog.String("game_id", string(game.ID)),
			slog.Int("turns", len(game.Turns)),
		)
	default:
		game.Current = model.OpponentOf(seat)
	}

	game.TurnStartedAt = now
	game.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Restart clears the board and resets the seats so the game can be replayed
func (c *Controller) Restart(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for i := range game.Seats {
		seat := &game.Seats[i]
		if seat.Kind != model.SeatComputer {
			continue
		}
		d, err := model.LookupDifficulty(seat.Difficulty)
		if err != nil {
			return nil, err
		}
		seat.MaxCandidates = d.MaxCandidates
		seat.MaxDepth = d.MaxDepth
	}

	now := c.clock.Now()
	game.Board.Clear()
	game.State = model.GameStateInProgress
	game.Current = game.FirstSeat
	game.Winner = model.NoSeat
	game.Turns = nil
	game.TurnStartedAt = now
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted", slog.String("game_id", string(gameID)))
	return game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, params CreateGameParams) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlayMove(ctx context.Context, gameID model.GameID, seat int, pos model.Position) (*model.Game, error)
	Restart(ctx context.Context, gameID model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
