package heuristic

import (
	"github.com/mcoot/mnkgame/internal/model"
)

// Fixed utilities for terminal positions. WinScore strictly dominates every
// value the evaluator can return.
const (
	WinScore     = 1e9
	DrawScore    = 0.0
	MaxHeuristic = WinScore / 2
)

// Weights tunes the composite heuristic
type Weights struct {
	Attack          float64 // own symbols in winnable lines through the cell
	Defense         float64 // opponent symbols whose lines the cell interrupts
	ThreatAmplifier float64 // multiplies defense when the opponent is one move from a line
	Axes            float64 // axes still open to K in a row for the mover
	Openness        float64 // empty neighbours
}

// DefaultWeights returns the weights the agent plays with unless configured
func DefaultWeights() Weights {
	return Weights{
		Attack:          1,
		Defense:         0.1,
		ThreatAmplifier: 100,
		Axes:            1,
		Openness:        0.01,
	}
}

// Breakdown holds the unweighted components of a heuristic score
type Breakdown struct {
	Attack   int
	Defense  int
	Threat   bool
	Axes     int
	Openness int
}

// Evaluator scores non-terminal moves
type Evaluator struct {
	weights Weights
}

// New creates an Evaluator with the given weights
func New(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Weights returns the evaluator's weights
func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Analyze computes the score components for the move at index. The board
// must already hold the mover's symbol at index.
func (e *Evaluator) Analyze(board *model.Board, index int, mover, opponent model.Symbol) Breakdown {
	x, y := board.Coord(index)
	k := board.WinLength

	br := Breakdown{Axes: board.AvailableAxes(x, y, mover)}
	for _, n := range board.Support(x, y, mover) {
		br.Attack += n
	}

	threshold := ThreatThreshold(k)
	for _, blocked := range board.Blocked(x, y, opponent) {
		br.Defense += blocked
		if blocked >= threshold {
			br.Threat = true
		}
	}

	br.Openness = board.Openness(x, y)
	if board.Size() > k*k && board.OnEdge(x, y) && !board.IsCorner(x, y) {
		br.Openness = 0
	}
	return br
}

// Score returns the desirability of the move at index, oriented so that
// higher is better for the maximizing side
func (e *Evaluator) Score(board *model.Board, index int, mover, opponent model.Symbol, maximizing bool) float64 {
	br := e.Analyze(board, index, mover, opponent)
	score := e.Combine(br)
	if !maximizing {
		score = -score
	}
	return score
}

// Combine applies the weights to a breakdown. The result is clamped to
// +/- MaxHeuristic.
func (e *Evaluator) Combine(br Breakdown) float64 {
	w := e.weights
	defense := w.Defense * float64(br.Defense)
	if br.Threat {
		defense *= w.ThreatAmplifier
	}
	score := w.Attack*float64(br.Attack) +
		defense +
		w.Axes*float64(br.Axes) +
		w.Openness*float64(br.Openness)

	switch {
	case score > MaxHeuristic:
		return MaxHeuristic
	case score < -MaxHeuristic:
		return -MaxHeuristic
	}
	return score
}

// ThreatThreshold is the number of opponent symbols on one axis at which the
// opponent is treated as one move away from completing a line
func ThreatThreshold(k int) int {
	var t int
	if k%2 != 0 {
		t = (k + 1) / 2
	} else {
		t = k - 2
	}
	if t < 1 {
		return 1
	}
	return t
}

// TerminalScore is the fixed utility of a finished position, from the
// maximizing side's view. maximizing reports who made the final move.
func TerminalScore(status model.Status, maximizing bool) float64 {
	if status != model.StatusWin {
		return DrawScore
	}
	if maximizing {
		return WinScore
	}
	return -WinScore
}
