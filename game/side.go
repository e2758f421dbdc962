package game

import "fmt"

// Side identifies a player. Neutral marks unowned squares.
type Side int

const (
	Neutral Side = iota
	Red
	Blue
)

// Opposite returns the opponent of s. Neutral has no opponent.
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Neutral
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide converts the string form of a side back into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	case "neutral":
		return Neutral, nil
	}
	return Neutral, fmt.Errorf("unknown side %q", s)
}
