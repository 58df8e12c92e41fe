package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionMarker_RoundTrip(t *testing.T) {
	marker := PositionMarker(2, 7)
	assert.Equal(t, "Quote 2 of 7", marker)

	position, err := ParsePositionMarker(marker)
	require.NoError(t, err)
	assert.Equal(t, 2, position)
}

func TestParsePositionMarker_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{name: "empty", marker: ""},
		{name: "single quote footer", marker: "Id: 1234"},
		{name: "zero position", marker: "Quote 0 of 3"},
		{name: "garbage", marker: "Quote x of y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePositionMarker(tt.marker)
			assert.Error(t, err)
		})
	}
}
