package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/game"
)

type playOptions struct {
	width     int
	height    int
	winLength int
	first     string
	second    string
	names     []string
	symbols   []string
	resume    string
}

func newPlayCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the console",
		Long: `Play an interactive game in the console.

Each seat is human, random, computer, or a computer difficulty
(easy, medium, hard). Enter moves as "column line", counting from 1.
Enter "q" to stop; the game can be resumed later with --resume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "m", 3, "Board width")
	cmd.Flags().IntVarP(&opts.height, "height", "n", 3, "Board height")
	cmd.Flags().IntVarP(&opts.winLength, "win-length", "k", 3, "Symbols in a row needed to win")
	cmd.Flags().StringVar(&opts.first, "first", "human", "First seat: human, random, computer, easy, medium, hard")
	cmd.Flags().StringVar(&opts.second, "second", model.DifficultyMedium, "Second seat: human, random, computer, easy, medium, hard")
	cmd.Flags().StringSliceVar(&opts.names, "names", nil, "Seat names, comma separated")
	cmd.Flags().StringSliceVar(&opts.symbols, "symbols", []string{"X", "O"}, "Seat symbols, comma separated")
	cmd.Flags().StringVar(&opts.resume, "resume", "", "Resume a saved game by id")

	return cmd
}

func (o *playOptions) createParams() (game.CreateGameParams, error) {
	params := game.CreateGameParams{
		Width:     o.width,
		Height:    o.height,
		WinLength: o.winLength,
	}
	if len(o.symbols) != 2 {
		return params, fmt.Errorf("--symbols: need exactly two symbols")
	}
	for i, value := range []string{o.first, o.second} {
		kind, difficulty, err := parseSeatKind(value)
		if err != nil {
			return params, err
		}
		symbol, err := parseSymbol("symbols", o.symbols[i])
		if err != nil {
			return params, err
		}
		name := defaultSeatName(kind, difficulty, i)
		if i < len(o.names) && o.names[i] != "" {
			name = o.names[i]
		}
		params.Seats[i] = game.SeatParams{
			Name:       name,
			Symbol:     symbol,
			Kind:       kind,
			Difficulty: difficulty,
		}
	}
	return params, nil
}

func defaultSeatName(kind model.SeatKind, difficulty string, seat int) string {
	switch kind {
	case model.SeatComputer:
		if difficulty == "" {
			difficulty = model.DifficultyMedium
		}
		return fmt.Sprintf("Computer %d (%s)", seat+1, model.DifficultyDisplayName(difficulty))
	case model.SeatRandom:
		return fmt.Sprintf("Random %d", seat+1)
	default:
		return fmt.Sprintf("Player %d", seat+1)
	}
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	ctx := cmd.Context()
	out := newOutput(cmd)

	var g *model.Game
	var err error
	if opts.resume != "" {
		g, err = app.GameController.GetGame(ctx, model.GameID(opts.resume))
	} else {
		var params game.CreateGameParams
		params, err = opts.createParams()
		if err != nil {
			return err
		}
		g, err = app.GameController.CreateGame(ctx, params)
	}
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		if _, err := app.BotService.ProcessBotActions(ctx, g.ID); err != nil {
			return err
		}
		if g, err = app.GameController.GetGame(ctx, g.ID); err != nil {
			return err
		}
		out.Print(NewGameView(g))

		if g.IsComplete() {
			out.Prompt("Play again? [y/N] ")
			if !in.Scan() || !isYes(in.Text()) {
				return in.Err()
			}
			if g, err = app.GameController.Restart(ctx, g.ID); err != nil {
				return err
			}
			continue
		}

		seat := g.CurrentSeat()
		for {
			out.Prompt(fmt.Sprintf("%s (%s), enter column and line: ", seat.Name, seat.Symbol))
			if !in.Scan() {
				out.PrintMessage(fmt.Sprintf("Game saved as %s", g.ID))
				return in.Err()
			}
			input := strings.TrimSpace(in.Text())
			if input == "q" || input == "quit" {
				out.PrintMessage(fmt.Sprintf("Game saved as %s", g.ID))
				return nil
			}

			pos, err := ParsePosition(input)
			if err == nil {
				_, err = app.GameController.PlayMove(ctx, g.ID, g.Current, pos)
			}
			if err == nil {
				break
			}
			if errors.Is(err, model.ErrInvalidPosition) || errors.Is(err, model.ErrCellOccupied) {
				out.PrintError(err)
				continue
			}
			return err
		}
	}
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
