package model

import "fmt"

// Difficulty constants
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultCapGrowth is how much a capped computer seat widens its candidate
// cap after each of its turns
const DefaultCapGrowth = 2

// Difficulty is a preset search budget for a computer seat
type Difficulty struct {
	Name          string
	MaxCandidates int // 0 means every legal move is expanded
	MaxDepth      int // plies, 0 means unbounded
	CapGrowth     int
}

var difficulties = map[string]Difficulty{
	DifficultyEasy:   {Name: DifficultyEasy, MaxCandidates: 5, MaxDepth: 2, CapGrowth: DefaultCapGrowth},
	DifficultyMedium: {Name: DifficultyMedium, MaxCandidates: 10, MaxDepth: 3, CapGrowth: DefaultCapGrowth},
	DifficultyHard:   {Name: DifficultyHard, MaxCandidates: 0, MaxDepth: 4, CapGrowth: DefaultCapGrowth},
}

// LookupDifficulty returns the preset with the given name
func LookupDifficulty(name string) (Difficulty, error) {
	d, ok := difficulties[name]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return d, nil
}

// DifficultyDisplayName returns a human-readable label for a difficulty
func DifficultyDisplayName(name string) string {
	switch name {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return name
	}
}

// ValidDifficulties returns all valid difficulty names
func ValidDifficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
