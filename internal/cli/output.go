package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/mcoot/mnkgame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	au     aurora.Aurora
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer, color bool) *Output {
	return &Output{
		format: format,
		out:    out,
		errOut: errOut,
		au:     aurora.NewAurora(color),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "%s %s\n", o.au.Red("Error:"), err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

// Prompt writes text without a trailing newline. Prompts are omitted in
// JSON mode so the output stays machine readable.
func (o *Output) Prompt(msg string) {
	if o.format == "json" {
		return
	}
	fmt.Fprint(o.out, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGame(v)
	case []GameSummary:
		o.printGameList(v)
	case Suggestion:
		o.printSuggestion(v)
	case SelfPlayReport:
		o.printSelfPlayReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SeatView describes one seat
type SeatView struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Kind          string `json:"kind"`
	Difficulty    string `json:"difficulty,omitempty"`
	MaxCandidates int    `json:"max_candidates,omitempty"`
	MaxDepth      int    `json:"max_depth,omitempty"`
}

// TurnView describes one played turn. Coordinates are 1-based.
type TurnView struct {
	Turn      int    `json:"turn"`
	Seat      string `json:"seat"`
	Column    int    `json:"column"`
	Line      int    `json:"line"`
	Status    string `json:"status"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// GameView is the printable state of a game
type GameView struct {
	ID        string     `json:"id"`
	State     string     `json:"state"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	WinLength int        `json:"win_length"`
	Rows      []string   `json:"rows"`
	Seats     []SeatView `json:"seats"`
	ToMove    string     `json:"to_move,omitempty"`
	Winner    string     `json:"winner,omitempty"`
	Turns     []TurnView `json:"turns"`

	board *model.Board
	last  *model.Position
	marks [2]model.Symbol
}

// NewGameView builds a GameView from a game
func NewGameView(g *model.Game) GameView {
	v := GameView{
		ID:        string(g.ID),
		State:     string(g.State),
		Width:     g.Board.Width,
		Height:    g.Board.Height,
		WinLength: g.Board.WinLength,
		Rows:      strings.Split(g.Board.String(), model.RowSeparator),
		Turns:     make([]TurnView, 0, len(g.Turns)),
		board:     g.Board,
		marks:     [2]model.Symbol{g.Seats[0].Symbol, g.Seats[1].Symbol},
	}
	for _, s := range g.Seats {
		v.Seats = append(v.Seats, SeatView{
			Name:          s.Name,
			Symbol:        s.Symbol.String(),
			Kind:          string(s.Kind),
			Difficulty:    s.Difficulty,
			MaxCandidates: s.MaxCandidates,
			MaxDepth:      s.MaxDepth,
		})
	}
	for _, t := range g.Turns {
		v.Turns = append(v.Turns, TurnView{
			Turn:      t.Turn,
			Seat:      g.Seats[t.Seat].Name,
			Column:    t.Position.X + 1,
			Line:      t.Position.Y + 1,
			Status:    t.Status.String(),
			ElapsedMS: t.Elapsed.Milliseconds(),
		})
	}
	if last := g.LastTurn(); last != nil {
		pos := last.Position
		v.last = &pos
	}
	if !g.IsComplete() {
		v.ToMove = g.CurrentSeat().Name
	}
	if w := g.WinnerSeat(); w != nil {
		v.Winner = w.Name
	}
	return v
}

// GameSummary is one line of the game list
type GameSummary struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Size      string    `json:"size"`
	Players   string    `json:"players"`
	Turns     int       `json:"turns"`
	Winner    string    `json:"winner,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameSummary builds a GameSummary from a game
func NewGameSummary(g *model.Game) GameSummary {
	s := GameSummary{
		ID:        string(g.ID),
		State:     string(g.State),
		Size:      fmt.Sprintf("%dx%d k=%d", g.Board.Width, g.Board.Height, g.Board.WinLength),
		Players:   fmt.Sprintf("%s vs %s", g.Seats[0].Name, g.Seats[1].Name),
		Turns:     len(g.Turns),
		UpdatedAt: g.UpdatedAt,
	}
	if w := g.WinnerSeat(); w != nil {
		s.Winner = w.Name
	}
	return s
}

// Suggestion is the agent's answer for a single board. Coordinates are 1-based.
type Suggestion struct {
	Column int     `json:"column"`
	Line   int     `json:"line"`
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
	Nodes  int64   `json:"nodes"`
	Board  string  `json:"board"`
}

// SelfPlayReport summarises a batch of agent-vs-agent games
type SelfPlayReport struct {
	Games     int            `json:"games"`
	Wins      map[string]int `json:"wins"`
	Draws     int            `json:"draws"`
	AvgTurns  float64        `json:"avg_turns"`
	ElapsedMS int64          `json:"elapsed_ms"`
	GameIDs   []string       `json:"game_ids,omitempty"`
}

func (o *Output) printGame(g GameView) {
	fmt.Fprintf(o.out, "Game: %s\n", g.ID)
	fmt.Fprintf(o.out, "Board: %dx%d, %d in a row\n", g.Width, g.Height, g.WinLength)
	for i, s := range g.Seats {
		label := s.Kind
		if s.Difficulty != "" {
			label = fmt.Sprintf("%s, %s", s.Kind, model.DifficultyDisplayName(s.Difficulty))
		}
		fmt.Fprintf(o.out, "%s: %s (%s)\n", o.mark(g.marks[i], i, false), s.Name, label)
	}
	fmt.Fprintln(o.out)
	o.printBoard(g)

	switch {
	case g.Winner != "":
		fmt.Fprintf(o.out, "%s wins after %d turns!\n", o.au.Bold(g.Winner), len(g.Turns))
	case g.State == string(model.GameStateDrawn):
		fmt.Fprintf(o.out, "Draw after %d turns.\n", len(g.Turns))
	case len(g.Turns) > 0:
		t := g.Turns[len(g.Turns)-1]
		fmt.Fprintf(o.out, "Turn %d: %s played %d %d (%dms)\n", t.Turn, t.Seat, t.Column, t.Line, t.ElapsedMS)
	}
}

// mark renders a seat's symbol in its colour
func (o *Output) mark(sym model.Symbol, seat int, last bool) string {
	var v aurora.Value
	if seat == 0 {
		v = o.au.Cyan(sym.String())
	} else {
		v = o.au.Magenta(sym.String())
	}
	if last {
		v = v.Bold().Underline()
	}
	return v.String()
}

func (o *Output) printBoard(g GameView) {
	b := g.board
	if b == nil {
		return
	}

	// Print column headers (1-based)
	fmt.Fprint(o.out, "    ")
	for x := 0; x < b.Width; x++ {
		fmt.Fprintf(o.out, "%3d", x+1)
	}
	fmt.Fprintln(o.out)

	border := "    +" + strings.Repeat("-", 3*b.Width+1) + "+"
	fmt.Fprintln(o.out, border)

	for y := 0; y < b.Height; y++ {
		fmt.Fprintf(o.out, "%3d |", y+1)
		for x := 0; x < b.Width; x++ {
			cell := b.Get(x, y)
			last := g.last != nil && g.last.X == x && g.last.Y == y
			switch cell {
			case model.Empty:
				fmt.Fprintf(o.out, "  %s", o.au.Faint("."))
			case g.marks[0]:
				fmt.Fprintf(o.out, "  %s", o.mark(cell, 0, last))
			case g.marks[1]:
				fmt.Fprintf(o.out, "  %s", o.mark(cell, 1, last))
			default:
				fmt.Fprintf(o.out, "  %s", cell)
			}
		}
		fmt.Fprintln(o.out, " |")
	}

	fmt.Fprintln(o.out, border)
}

func (o *Output) printGameList(games []GameSummary) {
	if len(games) == 0 {
		fmt.Fprintln(o.out, "No games")
		return
	}
	for _, g := range games {
		result := g.State
		if g.Winner != "" {
			result = fmt.Sprintf("%s by %s", g.State, g.Winner)
		}
		fmt.Fprintf(o.out, "%s  %-12s  %-24s  %3d turns  %s\n", g.ID, g.Size, g.Players, g.Turns, result)
	}
}

func (o *Output) printSuggestion(s Suggestion) {
	fmt.Fprintf(o.out, "%s plays column %d, line %d\n", o.au.Bold(s.Symbol), s.Column, s.Line)
	fmt.Fprintf(o.out, "Score: %g\n", s.Score)
	fmt.Fprintf(o.out, "Nodes: %d\n", s.Nodes)
}

func (o *Output) printSelfPlayReport(r SelfPlayReport) {
	fmt.Fprintf(o.out, "Games: %d\n", r.Games)
	names := make([]string, 0, len(r.Wins))
	for name := range r.Wins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(o.out, "  %s wins: %d\n", name, r.Wins[name])
	}
	fmt.Fprintf(o.out, "  Draws: %d\n", r.Draws)
	fmt.Fprintf(o.out, "Average turns: %.1f\n", r.AvgTurns)
	fmt.Fprintf(o.out, "Elapsed: %s\n", time.Duration(r.ElapsedMS)*time.Millisecond)
}
