// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never storage rows or Discord payloads
//   - Error returns use domain error types (ErrNotFound, ErrValidation, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/AutMai/discord-net/internal/domain"
)

// QuoteStore is the persistence contract for quotes.
// Implementations must scope every operation except FindByID and DeleteByID
// by guild id, and must map backend failures to domain.ErrUnavailable.
type QuoteStore interface {
	// Add persists a new quote.
	Add(ctx context.Context, quote *domain.Quote) error

	// ListByGuild returns all quotes owned by the guild, in storage order
	// (practically insertion order). An empty guild yields an empty slice,
	// not an error.
	ListByGuild(ctx context.Context, guildID string) ([]*domain.Quote, error)

	// FindByID looks up a single quote by id.
	// Returns domain.ErrNotFound if no such quote exists.
	FindByID(ctx context.Context, id string) (*domain.Quote, error)

	// DeleteByID atomically removes and returns the quote with the given id.
	// Returns domain.ErrNotFound if no such quote exists; deleting twice
	// yields not-found the second time.
	DeleteByID(ctx context.Context, id string) (*domain.Quote, error)

	// Search returns the guild's quotes matching a case-insensitive
	// substring term across text, situation, author, id and the rendered
	// creation date. No matches yields an empty slice, not an error.
	Search(ctx context.Context, guildID, term string) ([]*domain.Quote, error)
}

// QuoteRenderer turns quotes into displayable units. The unit rendered for a
// paginated list carries a recoverable position marker in its footer so
// navigation can pick up where the last render left off.
type QuoteRenderer interface {
	// RenderQuote renders a single quote with the given styling.
	RenderQuote(quote *domain.Quote, style RenderStyle) *RenderedUnit

	// RenderPage renders the quote at a 1-based position within a list,
	// including the "Quote N of M" position marker. The caller guarantees
	// 1 <= position <= len(quotes).
	RenderPage(quotes []*domain.Quote, position int, style RenderStyle) *RenderedUnit

	// RenderSummary renders a multi-quote summary (search results).
	RenderSummary(quotes []*domain.Quote) *RenderedUnit
}

// RenderedUnit is a transport-agnostic displayable representation of one or
// more quotes. The Discord adapter maps it onto an embed.
type RenderedUnit struct {
	Title       string
	Description string
	Footer      string
	Fields      []RenderedField
	Style       RenderStyle
}

// RenderedField is a titled sub-section of a rendered unit.
type RenderedField struct {
	Name  string
	Value string
}

// RenderStyle selects the visual styling of a rendered unit.
type RenderStyle int

// Render styles, one per command outcome.
const (
	StyleSuccess RenderStyle = iota // add
	StyleWarning                    // delete
	StyleRandom                     // random
	StylePaging                     // list / navigation
	StyleSearch                     // search
)
