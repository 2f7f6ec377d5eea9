package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrInvalidNotation = errors.New("invalid board notation")
	ErrUnknownStatus   = errors.New("unknown status")

	// Search errors
	ErrNoLegalMoves = errors.New("no legal moves available")

	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameComplete      = errors.New("game is already complete")
	ErrNotPlayerTurn     = errors.New("not this player's turn")
	ErrInvalidGameConfig = errors.New("invalid game configuration")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
