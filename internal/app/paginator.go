package app

import (
	"fmt"

	"github.com/AutMai/discord-net/internal/domain"
)

// Direction is a navigation direction on a paginated quote list.
type Direction int

// Navigation directions.
const (
	DirectionPrevious Direction = iota
	DirectionNext
)

// String returns the wire name of the direction, as used in component ids.
func (d Direction) String() string {
	if d == DirectionPrevious {
		return "previous"
	}

	return "next"
}

// ParseDirection parses a wire direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "previous":
		return DirectionPrevious, nil
	case "next":
		return DirectionNext, nil
	default:
		return 0, domain.NewValidationErrorWithValue("direction", "unknown navigation direction", s)
	}
}

// Advance computes the next 1-based position from the position recovered at
// the last render and the length of the freshly fetched list. The list may
// have grown or shrunk since the last render: a stale position is clamped
// into range before the transition, and both ends wrap around.
func Advance(position, length int, dir Direction) (int, error) {
	if length <= 0 {
		return 0, domain.ErrEmptyCollection
	}

	// The list shrank (or the marker was stale); never index past the end.
	if position > length {
		position = length
	}
	if position < 1 {
		position = 1
	}

	switch dir {
	case DirectionPrevious:
		if position == 1 {
			return length, nil
		}

		return position - 1, nil
	case DirectionNext:
		if position == length {
			return 1, nil
		}

		return position + 1, nil
	default:
		return 0, fmt.Errorf("unknown direction %d", dir)
	}
}
