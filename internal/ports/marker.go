package ports

import (
	"fmt"

	"github.com/AutMai/discord-net/internal/domain"
)

// PositionMarker renders the recoverable "Quote N of M" marker that a
// paginated unit carries in its footer. Navigation decodes this marker when
// no explicit position is available, so the format is part of the renderer
// contract, not a display detail.
func PositionMarker(position, total int) string {
	return fmt.Sprintf("Quote %d of %d", position, total)
}

// ParsePositionMarker recovers the 1-based position from a rendered marker.
// Returns a validation error for anything that does not look like a marker.
func ParsePositionMarker(marker string) (int, error) {
	var position, total int

	n, err := fmt.Sscanf(marker, "Quote %d of %d", &position, &total)
	if err != nil || n != 2 || position < 1 {
		return 0, domain.NewValidationErrorWithValue("marker", "not a position marker", marker)
	}

	return position, nil
}
