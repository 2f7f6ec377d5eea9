package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/mnkgame/internal/dependencies/clock"
	"github.com/mcoot/mnkgame/internal/dependencies/random"
	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/bot"
	"github.com/mcoot/mnkgame/internal/services/game"
	"github.com/mcoot/mnkgame/internal/storage"
	"github.com/mcoot/mnkgame/internal/storage/memory"
	redisstorage "github.com/mcoot/mnkgame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	GameController *game.Controller
	SearchStrategy *bot.SearchStrategy
	BotService     *bot.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes bot play reproducible when set
	Seed *int64
	// Search tunes computer seats (optional)
	// If zero value, defaults to bot.DefaultSearchOptions()
	Search bot.SearchOptions
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	// Use default search options if not provided
	searchOpts := cfg.Search
	if searchOpts.Workers == 0 {
		searchOpts = bot.DefaultSearchOptions()
	}

	app := newWithDependencies(store, clk, rnd, searchOpts, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, searchOpts bot.SearchOptions, logger *slog.Logger) *App {
	// Create services
	gameController := game.NewController(store, clk, logger)
	searchStrategy := bot.NewSearchStrategy(rnd, searchOpts, logger)
	strategies := map[model.SeatKind]bot.Strategy{
		model.SeatComputer: searchStrategy,
		model.SeatRandom:   bot.NewRandomStrategy(rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		GameController: gameController,
		SearchStrategy: searchStrategy,
		BotService:     botService,
	}
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
