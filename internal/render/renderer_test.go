package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutMai/discord-net/internal/domain"
	"github.com/AutMai/discord-net/internal/ports"
)

func testQuote(text string) *domain.Quote {
	return &domain.Quote{
		ID:        "11111111-2222-3333-4444-555555555555",
		GuildID:   "guild-1",
		Text:      text,
		Situation: "during standup",
		Author:    "alice",
		CreatedAt: time.Date(2024, time.March, 5, 9, 7, 0, 0, time.Local),
	}
}

func TestRenderQuote(t *testing.T) {
	unit := New().RenderQuote(testQuote("Hello"), ports.StyleSuccess)

	assert.Equal(t, "Hello", unit.Title)
	assert.Contains(t, unit.Description, "- during standup")
	assert.Contains(t, unit.Description, "Added by alice")
	assert.Contains(t, unit.Description, "Created at 5.3.2024 - 9:07")
	assert.Equal(t, "Id: 11111111-2222-3333-4444-555555555555", unit.Footer)
	assert.Equal(t, ports.StyleSuccess, unit.Style)
}

func TestRenderPage_FooterCarriesMarker(t *testing.T) {
	quotes := []*domain.Quote{testQuote("one"), testQuote("two"), testQuote("three")}

	unit := New().RenderPage(quotes, 2, ports.StylePaging)

	assert.Equal(t, "two", unit.Title)
	assert.Equal(t, "Quote 2 of 3", unit.Footer)
	assert.Contains(t, unit.Description, "Id: ")

	// The marker must round-trip through the parser used for legacy messages.
	position, err := ports.ParsePositionMarker(unit.Footer)
	require.NoError(t, err)
	assert.Equal(t, 2, position)
}

func TestRenderSummary(t *testing.T) {
	quotes := []*domain.Quote{testQuote("one"), testQuote("two")}

	unit := New().RenderSummary(quotes)

	assert.Equal(t, "Search Results", unit.Title)
	require.Len(t, unit.Fields, 2)
	assert.Equal(t, "one", unit.Fields[0].Name)
	assert.Equal(t, "- during standup", unit.Fields[0].Value)
}

func TestRenderSummary_CapsFields(t *testing.T) {
	quotes := make([]*domain.Quote, 14)
	for i := range quotes {
		quotes[i] = testQuote("q")
	}

	unit := New().RenderSummary(quotes)

	assert.Len(t, unit.Fields, 10)
	assert.Equal(t, "Showing 10 of 14 matches.", unit.Description)
}

func TestRenderSummary_Empty(t *testing.T) {
	unit := New().RenderSummary(nil)

	assert.Empty(t, unit.Fields)
	assert.Equal(t, "No quotes matched your search.", unit.Description)
}
