package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/mnkgame/internal/model"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Manage saved games",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesShowCmd())
	cmd.AddCommand(newGamesDeleteCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := app.GameController.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			result := make([]GameSummary, 0, len(games))
			for _, g := range games {
				result = append(result, NewGameSummary(g))
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newGamesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved game with its turn log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.GameController.GetGame(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}

			out := newOutput(cmd)
			view := NewGameView(g)
			out.Print(view)
			if cfg.Output != "json" {
				for _, t := range view.Turns {
					out.PrintMessage(fmt.Sprintf("%3d. %s: %d %d (%s, %dms)", t.Turn, t.Seat, t.Column, t.Line, t.Status, t.ElapsedMS))
				}
			}
			return nil
		},
	}
}

func newGamesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteGame(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}

			newOutput(cmd).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}
