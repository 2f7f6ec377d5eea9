package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/mnkgame/internal/model"
)

// ParsePosition reads a 1-based "column line" pair such as "2 3" or "2,3"
// and returns the 0-based position
func ParsePosition(input string) (model.Position, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return model.Position{}, fmt.Errorf("%w: expected column and line, got %q", model.ErrInvalidPosition, input)
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: invalid column %q", model.ErrInvalidPosition, fields[0])
	}
	line, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: invalid line %q", model.ErrInvalidPosition, fields[1])
	}
	if col < 1 || line < 1 {
		return model.Position{}, fmt.Errorf("%w: column and line start at 1", model.ErrInvalidPosition)
	}
	return model.Position{X: col - 1, Y: line - 1}, nil
}

// parseSymbol reads a single-character symbol flag
func parseSymbol(name, value string) (model.Symbol, error) {
	var s model.Symbol
	if err := s.UnmarshalText([]byte(value)); err != nil {
		return model.Empty, fmt.Errorf("--%s: %w", name, err)
	}
	switch s {
	case model.Empty:
		return model.Empty, fmt.Errorf("--%s: %w: symbol must not be empty", name, model.ErrInvalidSymbol)
	case '.', '_', '-', ' ':
		return model.Empty, fmt.Errorf("--%s: %q is reserved for empty cells", name, value)
	}
	return s, nil
}

// parseSeatKind maps a seat flag to a seat kind and difficulty. Difficulty
// names select a computer seat.
func parseSeatKind(value string) (model.SeatKind, string, error) {
	switch value {
	case string(model.SeatHuman), string(model.SeatRandom):
		return model.SeatKind(value), "", nil
	case string(model.SeatComputer):
		return model.SeatComputer, "", nil
	}
	if _, err := model.LookupDifficulty(value); err != nil {
		return "", "", fmt.Errorf("%w: want human, random, computer or one of %s",
			err, strings.Join(model.ValidDifficulties(), ", "))
	}
	return model.SeatComputer, value, nil
}
