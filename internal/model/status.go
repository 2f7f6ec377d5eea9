package model

// Status is the outcome of placing a symbol
type Status int

const (
	StatusContinue Status = iota
	StatusDraw
	StatusWin
	StatusInvalid
)

// String returns a lower-case name for the status
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusDraw:
		return "draw"
	case StatusWin:
		return "win"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the game is over after this status
func (s Status) IsTerminal() bool {
	return s == StatusDraw || s == StatusWin
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "continue":
		*s = StatusContinue
	case "draw":
		*s = StatusDraw
	case "win":
		*s = StatusWin
	case "invalid":
		*s = StatusInvalid
	default:
		return ErrUnknownStatus
	}
	return nil
}
