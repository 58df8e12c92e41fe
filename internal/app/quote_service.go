// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/AutMai/discord-net/internal/domain"
	"github.com/AutMai/discord-net/internal/ports"
)

// Page is a paginated view of a guild's quote list: the rendered unit for
// one quote plus the position it was rendered at. The position also ends up
// in the navigation buttons so the next click can recover it.
type Page struct {
	Unit     *ports.RenderedUnit
	Position int
	Total    int
}

// QuoteService orchestrates quote-related use cases. It is the single place
// that maps subcommands onto store and renderer calls; the Discord adapter
// only translates interactions in and responses out.
type QuoteService struct {
	store    ports.QuoteStore
	renderer ports.QuoteRenderer
	logger   *slog.Logger
	intn     func(n int) int
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Store    ports.QuoteStore
	Renderer ports.QuoteRenderer
	Logger   *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a store")
	}
	if cfg.Renderer == nil {
		panic("app: QuoteService requires a renderer")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:    cfg.Store,
		renderer: cfg.Renderer,
		logger:   logger,
		intn:     rand.Intn,
	}
}

// Add records a new quote for the guild and returns the success view.
func (s *QuoteService) Add(ctx context.Context, guildID, text, situation, author string) (*ports.RenderedUnit, error) {
	quote, err := domain.NewQuote(guildID, text, situation, author)
	if err != nil {
		return nil, err
	}

	if err := s.store.Add(ctx, quote); err != nil {
		s.logger.ErrorContext(ctx, "failed to add quote",
			slog.String("guild_id", guildID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "added quote",
		slog.String("guild_id", guildID),
		slog.String("quote_id", quote.ID),
		slog.String("author", author),
	)

	return s.renderer.RenderQuote(quote, ports.StyleSuccess), nil
}

// Delete removes a quote by id and returns a warning-styled view of the
// removed record. A malformed id is a validation error; a missing record is
// a not-found error, never a crash.
func (s *QuoteService) Delete(ctx context.Context, id string) (*ports.RenderedUnit, error) {
	parsed, err := domain.ParseQuoteID(id)
	if err != nil {
		return nil, err
	}

	quote, err := s.store.DeleteByID(ctx, parsed)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to delete quote",
				slog.String("quote_id", parsed),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "deleted quote",
		slog.String("guild_id", quote.GuildID),
		slog.String("quote_id", quote.ID),
	)

	return s.renderer.RenderQuote(quote, ports.StyleWarning), nil
}

// Random picks a uniformly random quote from the guild.
// An empty guild yields an explicit empty-collection error.
func (s *QuoteService) Random(ctx context.Context, guildID string) (*ports.RenderedUnit, error) {
	quotes, err := s.store.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, domain.NewEmptyCollectionError(guildID)
	}

	quote := quotes[s.intn(len(quotes))]

	return s.renderer.RenderQuote(quote, ports.StyleRandom), nil
}

// List renders the guild's quote list seeded at position 1.
func (s *QuoteService) List(ctx context.Context, guildID string) (*Page, error) {
	quotes, err := s.store.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, domain.NewEmptyCollectionError(guildID)
	}

	return &Page{
		Unit:     s.renderer.RenderPage(quotes, 1, ports.StylePaging),
		Position: 1,
		Total:    len(quotes),
	}, nil
}

// Navigate re-renders the guild's quote list one step away from the position
// recovered from the previously rendered unit. The list is re-fetched, so
// concurrent adds and deletes are reflected; clicks from several users race
// on the same message and the last rendered state wins.
func (s *QuoteService) Navigate(ctx context.Context, guildID string, position int, dir Direction) (*Page, error) {
	quotes, err := s.store.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	next, err := Advance(position, len(quotes), dir)
	if err != nil {
		if domain.IsEmptyCollection(err) {
			return nil, domain.NewEmptyCollectionError(guildID)
		}
		return nil, err
	}

	return &Page{
		Unit:     s.renderer.RenderPage(quotes, next, ports.StylePaging),
		Position: next,
		Total:    len(quotes),
	}, nil
}

// Search matches quotes against a case-insensitive substring term. A single
// match renders as a full quote view; zero or many matches render as a
// summary without navigation controls.
func (s *QuoteService) Search(ctx context.Context, guildID, term string) (*ports.RenderedUnit, error) {
	quotes, err := s.store.Search(ctx, guildID, term)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "searched quotes",
		slog.String("guild_id", guildID),
		slog.Int("matches", len(quotes)),
	)

	if len(quotes) == 1 {
		return s.renderer.RenderQuote(quotes[0], ports.StyleSearch), nil
	}

	return s.renderer.RenderSummary(quotes), nil
}
