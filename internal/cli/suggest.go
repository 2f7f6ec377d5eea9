package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/mnkgame/internal/model"
	"github.com/mcoot/mnkgame/internal/services/agent"
)

type suggestOptions struct {
	board         string
	winLength     int
	symbol        string
	opponent      string
	maxCandidates int
	maxDepth      int
	workers       int
	shuffle       bool
}

func newSuggestCmd() *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the agent for its move on a board",
		Long: `Ask the agent for its move on a board.

The board is given as rows separated by "/", with "." for empty cells,
e.g. "X.O/.X./..." for a 3x3 board. The answer counts columns and
lines from 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.board, "board", "b", "", "Board in row notation (required)")
	cmd.Flags().IntVarP(&opts.winLength, "win-length", "k", 3, "Symbols in a row needed to win")
	cmd.Flags().StringVar(&opts.symbol, "symbol", "X", "Symbol the agent plays")
	cmd.Flags().StringVar(&opts.opponent, "opponent", "O", "Symbol of the other side")
	cmd.Flags().IntVar(&opts.maxCandidates, "max-candidates", 0, "Moves expanded per position, 0 for all")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Plies searched, 0 to the end of the game")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "Root moves searched in parallel")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "Randomize the order of equally scored moves")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func runSuggest(cmd *cobra.Command, opts *suggestOptions) error {
	board, err := model.ParseBoard(opts.board, opts.winLength)
	if err != nil {
		return err
	}
	own, err := parseSymbol("symbol", opts.symbol)
	if err != nil {
		return err
	}
	opp, err := parseSymbol("opponent", opts.opponent)
	if err != nil {
		return err
	}
	if own == opp {
		return fmt.Errorf("%w: --symbol and --opponent are both %q", model.ErrInvalidSymbol, own.String())
	}
	if board.IsFull() {
		return model.ErrNoLegalMoves
	}

	acfg := agent.DefaultConfig()
	acfg.Shuffle = opts.shuffle
	acfg.Workers = opts.workers
	a := agent.New(acfg, app.Random, app.Logger)
	a.Configure(own, opp, opts.maxCandidates, opts.maxDepth)

	d := a.Decide(board)
	newOutput(cmd).Print(Suggestion{
		Column: d.Position.X + 1,
		Line:   d.Position.Y + 1,
		Symbol: own.String(),
		Score:  d.Score,
		Nodes:  d.Nodes,
		Board:  board.String(),
	})
	return nil
}
