package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AutMai/discord-net/internal/domain"
)

// Store is the SQLite-backed QuoteStore.
type Store struct {
	db *sql.DB
}

// NewStore creates a quote store over an opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add persists a new quote.
func (s *Store) Add(ctx context.Context, quote *domain.Quote) error {
	query := `
		INSERT INTO quotes (id, guild_id, text, situation, author, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		quote.ID, quote.GuildID, quote.Text, quote.Situation, quote.Author,
		quote.CreatedAt.Unix(),
	)
	if err != nil {
		return domain.NewUnavailableError("quote-store", err.Error())
	}

	return nil
}

// ListByGuild returns all quotes for the guild in insertion (rowid) order.
func (s *Store) ListByGuild(ctx context.Context, guildID string) ([]*domain.Quote, error) {
	query := `
		SELECT id, guild_id, text, situation, author, created_at
		FROM quotes
		WHERE guild_id = ?
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query, guildID)
	if err != nil {
		return nil, domain.NewUnavailableError("quote-store", err.Error())
	}
	defer rows.Close()

	quotes := make([]*domain.Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, domain.NewUnavailableError("quote-store", err.Error())
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewUnavailableError("quote-store", err.Error())
	}

	return quotes, nil
}

// FindByID looks up a quote by id, unscoped by guild.
func (s *Store) FindByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `
		SELECT id, guild_id, text, situation, author, created_at
		FROM quotes
		WHERE id = ?
	`

	quote, err := scanQuote(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", id)
	}
	if err != nil {
		return nil, domain.NewUnavailableError("quote-store", err.Error())
	}

	return quote, nil
}

// DeleteByID atomically removes and returns the quote with the given id.
func (s *Store) DeleteByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `
		DELETE FROM quotes
		WHERE id = ?
		RETURNING id, guild_id, text, situation, author, created_at
	`

	quote, err := scanQuote(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", id)
	}
	if err != nil {
		return nil, domain.NewUnavailableError("quote-store", err.Error())
	}

	return quote, nil
}

// Search filters the guild's quotes by a case-insensitive substring term.
// Matching happens in memory via domain.Quote.Matches so the rendered
// creation date is searchable exactly as users see it in embeds.
func (s *Store) Search(ctx context.Context, guildID, term string) ([]*domain.Quote, error) {
	all, err := s.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Quote, 0)
	for _, quote := range all {
		if quote.Matches(term) {
			matched = append(matched, quote)
		}
	}

	return matched, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanQuote.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(row scanner) (*domain.Quote, error) {
	var (
		quote     domain.Quote
		createdAt int64
	)

	err := row.Scan(&quote.ID, &quote.GuildID, &quote.Text, &quote.Situation,
		&quote.Author, &createdAt)
	if err != nil {
		return nil, err
	}

	quote.CreatedAt = time.Unix(createdAt, 0)

	return &quote, nil
}
