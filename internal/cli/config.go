package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/mnkgame/internal/factory"
	redisstorage "github.com/mcoot/mnkgame/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Storage  string
	RedisURL string
	Output   string
	Seed     string
	Verbose  bool
	NoColor  bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:  getEnvOrDefault("MNK_STORAGE", factory.StorageTypeMemory),
		RedisURL: getEnvOrDefault("REDIS_URL", redisstorage.DefaultConfig().URL),
		Output:   getEnvOrDefault("MNK_OUTPUT", "text"),
		Seed:     os.Getenv("MNK_SEED"),
		Verbose:  false,
	}
}

// Validate checks option values that cobra cannot
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	switch c.Storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}
	return nil
}

// Logger builds the logger for diagnostics on w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Output == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FactoryConfig translates the CLI settings into an application config
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	if c.Seed != "" {
		seed, err := strconv.ParseInt(c.Seed, 10, 64)
		if err != nil {
			return factory.Config{}, fmt.Errorf("invalid seed: %w", err)
		}
		fc.Seed = &seed
	}
	return fc, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
