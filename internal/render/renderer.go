// Package render builds transport-agnostic views of quotes.
// The Discord adapter maps the rendered units onto embeds.
package render

import (
	"fmt"

	"github.com/AutMai/discord-net/internal/domain"
	"github.com/AutMai/discord-net/internal/ports"
)

// Renderer implements ports.QuoteRenderer.
type Renderer struct{}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderQuote renders a single quote. The id goes into the footer so users
// can copy it for a later delete.
func (r *Renderer) RenderQuote(quote *domain.Quote, style ports.RenderStyle) *ports.RenderedUnit {
	return &ports.RenderedUnit{
		Title: quote.Text,
		Description: fmt.Sprintf("- %s\n\nAdded by %s\nCreated at %s",
			quote.Situation, quote.Author, quote.FormatCreatedAt()),
		Footer: "Id: " + quote.ID,
		Style:  style,
	}
}

// RenderPage renders the quote at a 1-based position within a list. The
// footer carries the position marker; the id moves into the description
// since the footer is taken.
func (r *Renderer) RenderPage(quotes []*domain.Quote, position int, style ports.RenderStyle) *ports.RenderedUnit {
	quote := quotes[position-1]

	return &ports.RenderedUnit{
		Title: quote.Text,
		Description: fmt.Sprintf("~ %s\n\nAdded by %s\nCreated at %s\nId: %s",
			quote.Situation, quote.Author, quote.FormatCreatedAt(), quote.ID),
		Footer: ports.PositionMarker(position, len(quotes)),
		Style:  style,
	}
}

// maxSummaryFields bounds search result embeds. Discord rejects embeds with
// more than 25 fields.
const maxSummaryFields = 10

// RenderSummary renders search results, one field per match.
func (r *Renderer) RenderSummary(quotes []*domain.Quote) *ports.RenderedUnit {
	unit := &ports.RenderedUnit{
		Title: "Search Results",
		Style: ports.StyleSearch,
	}

	if len(quotes) == 0 {
		unit.Description = "No quotes matched your search."
		return unit
	}

	if len(quotes) > maxSummaryFields {
		unit.Description = fmt.Sprintf("Showing %d of %d matches.", maxSummaryFields, len(quotes))
		quotes = quotes[:maxSummaryFields]
	}

	for _, quote := range quotes {
		unit.Fields = append(unit.Fields, ports.RenderedField{
			Name:  quote.Text,
			Value: "- " + quote.Situation,
		})
	}

	return unit
}
