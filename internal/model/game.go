package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateWon        GameState = "won"
	GameStateDrawn      GameState = "drawn"
)

// SeatKind says who makes the decisions for a seat
type SeatKind string

const (
	SeatHuman    SeatKind = "human"
	SeatComputer SeatKind = "computer" // search agent
	SeatRandom   SeatKind = "random"   // uniform random empty cell
)

// NoSeat marks the absence of a winner
const NoSeat = -1

// Seat is one of the two players in a game
type Seat struct {
	Name       string
	Symbol     Symbol
	Kind       SeatKind
	Difficulty string // computer seats only

	// Current search budget; grows between turns for capped computer seats
	MaxCandidates int
	MaxDepth      int
	CapGrowth     int
}

// IsBot returns true if the seat is played by the program
func (s Seat) IsBot() bool {
	return s.Kind == SeatComputer || s.Kind == SeatRandom
}

// TurnRecord is the log entry for one placed symbol
type TurnRecord struct {
	Turn     int // 1-indexed
	Seat     int
	Position Position
	Status   Status
	Elapsed  time.Duration
	PlayedAt time.Time
}

// Game is a single m,n,k match between two seats
type Game struct {
	ID        GameID
	State     GameState
	Board     *Board
	Seats     [2]Seat
	FirstSeat int
	Current   int // index into Seats of the side to move
	Winner    int // index into Seats, NoSeat while undecided or drawn
	Turns     []TurnRecord

	// Timing
	TurnStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentSeat returns the seat whose turn it is
func (g *Game) CurrentSeat() *Seat {
	return &g.Seats[g.Current]
}

// OpponentOf returns the index of the other seat
func OpponentOf(seat int) int {
	return 1 - seat
}

// IsComplete returns true once the game has been won or drawn
func (g *Game) IsComplete() bool {
	return g.State == GameStateWon || g.State == GameStateDrawn
}

// WinnerSeat returns the winning seat, or nil if there is none
func (g *Game) WinnerSeat() *Seat {
	if g.Winner == NoSeat {
		return nil
	}
	return &g.Seats[g.Winner]
}

// LastTurn returns the most recent turn record, or nil before the first move
func (g *Game) LastTurn() *TurnRecord {
	if len(g.Turns) == 0 {
		return nil
	}
	return &g.Turns[len(g.Turns)-1]
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	clone.Turns = append([]TurnRecord(nil), g.Turns...)
	return &clone
}
