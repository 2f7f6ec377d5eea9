package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/mnkgame/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// appBuilder creates the application for a command run
type appBuilder func(cfg *Config, cmd *cobra.Command) (*factory.App, error)

func buildApp(cfg *Config, cmd *cobra.Command) (*factory.App, error) {
	fc, err := cfg.FactoryConfig(cfg.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	return factory.New(fc)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(buildApp)
}

func newRootCmd(build appBuilder) *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mnk",
		Short: "Play m,n,k-games against a search-based agent",
		Long: `mnk plays generalized tic-tac-toe: a W x H board where K in a row wins.

Play interactively against the computer, ask the agent for a move on any
board, or run batches of agent-vs-agent games.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			var err error
			app, err = build(cfg, cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Game storage: memory, redis (env: MNK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: MNK_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible bot play (env: MNK_SEED)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured board output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newSelfPlayCmd())
	rootCmd.AddCommand(newGamesCmd())

	return rootCmd
}

// Execute runs the root command until it finishes or ctx is cancelled
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr(), !cfg.NoColor && cfg.Output == "text")
}
