package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/game"
)

type selfPlayOptions struct {
	games    int
	parallel int
	keep     bool
	playOptions
}

func newSelfPlayCmd() *cobra.Command {
	opts := &selfPlayOptions{}

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Run a batch of agent-vs-agent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfPlay(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.games, "games", 10, "Number of games to play")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 4, "Games played at the same time")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "Keep finished games in storage")
	cmd.Flags().IntVarP(&opts.width, "width", "m", 3, "Board width")
	cmd.Flags().IntVarP(&opts.height, "height", "n", 3, "Board height")
	cmd.Flags().IntVarP(&opts.winLength, "win-length", "k", 3, "Symbols in a row needed to win")
	cmd.Flags().StringVar(&opts.first, "first", model.DifficultyEasy, "First seat: random, computer, easy, medium, hard")
	cmd.Flags().StringVar(&opts.second, "second", model.DifficultyHard, "Second seat: random, computer, easy, medium, hard")
	cmd.Flags().StringSliceVar(&opts.symbols, "symbols", []string{"X", "O"}, "Seat symbols, comma separated")

	return cmd
}

func runSelfPlay(cmd *cobra.Command, opts *selfPlayOptions) error {
	if opts.games < 1 {
		return fmt.Errorf("--games must be at least 1")
	}
	if opts.parallel < 1 {
		opts.parallel = 1
	}
	params, err := opts.createParams()
	if err != nil {
		return err
	}
	for _, s := range params.Seats {
		if s.Kind == model.SeatHuman {
			return fmt.Errorf("selfplay seats cannot be human")
		}
	}

	bar := progressbar.NewOptions(opts.games,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Self-play"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)

	report := SelfPlayReport{
		Games: opts.games,
		Wins: map[string]int{
			params.Seats[0].Name: 0,
			params.Seats[1].Name: 0,
		},
	}
	var mu sync.Mutex
	totalTurns := 0
	start := app.Clock.Now()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.parallel)
	for range opts.games {
		g.Go(func() error {
			played, err := playOne(ctx, params, opts.keep)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if w := played.WinnerSeat(); w != nil {
				report.Wins[w.Name]++
			} else {
				report.Draws++
			}
			totalTurns += len(played.Turns)
			if opts.keep {
				report.GameIDs = append(report.GameIDs, string(played.ID))
			}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	_ = bar.Finish()
	_ = bar.Close()
	fmt.Fprintln(cmd.ErrOrStderr())

	report.AvgTurns = float64(totalTurns) / float64(opts.games)
	report.ElapsedMS = app.Clock.Since(start).Milliseconds()
	newOutput(cmd).Print(report)
	return nil
}

func playOne(ctx context.Context, params game.CreateGameParams, keep bool) (*model.Game, error) {
	g, err := app.GameController.CreateGame(ctx, params)
	if err != nil {
		return nil, err
	}
	if _, err := app.BotService.ProcessBotActions(ctx, g.ID); err != nil {
		return nil, err
	}
	g, err = app.GameController.GetGame(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if !g.IsComplete() {
		return nil, fmt.Errorf("game %s stopped before completion", g.ID)
	}
	if !keep {
		if err := app.GameController.DeleteGame(ctx, g.ID); err != nil {
			return nil, err
		}
	}
	return g, nil
}
