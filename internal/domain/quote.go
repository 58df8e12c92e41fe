// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Quote is a quotation recorded by a guild member.
// This is a domain entity - it has no knowledge of Discord or storage.
type Quote struct {
	// ID is the unique identifier for this quote, assigned at creation.
	ID string

	// GuildID is the Discord guild (community) that owns the quote.
	// Every operation except direct id lookup is scoped by this value.
	GuildID string

	// Text is the quoted content.
	Text string

	// Situation is the free-text context or attribution for the quote.
	Situation string

	// Author is the display name of the member who submitted the quote,
	// captured at creation time and never re-validated.
	Author string

	// CreatedAt is the creation timestamp. Stable once set.
	CreatedAt time.Time
}

// NewQuote creates a quote with a fresh id and the current time.
// Returns a validation error if a required field is blank.
func NewQuote(guildID, text, situation, author string) (*Quote, error) {
	if guildID == "" {
		return nil, NewValidationError("guildId", "must not be empty")
	}
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "must not be empty")
	}
	if strings.TrimSpace(situation) == "" {
		return nil, NewValidationError("situation", "must not be empty")
	}

	return &Quote{
		ID:        uuid.NewString(),
		GuildID:   guildID,
		Text:      text,
		Situation: situation,
		Author:    author,
		CreatedAt: time.Now(),
	}, nil
}

// ParseQuoteID validates a user-supplied quote id.
// A malformed id is a validation error, distinct from "not found".
func ParseQuoteID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", NewValidationErrorWithValue("id", "not a valid quote id", id)
	}

	return parsed.String(), nil
}

// FormatCreatedAt renders the creation timestamp the way embeds display it.
// Search matches against this same rendering.
func (q *Quote) FormatCreatedAt() string {
	t := q.CreatedAt.Local()

	return fmt.Sprintf("%d.%d.%d - %d:%02d", t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}

// Matches reports whether the quote matches a case-insensitive substring
// search term. The term is matched against text, situation, author, the
// stringified id and the rendered creation date, with OR semantics.
func (q *Quote) Matches(term string) bool {
	needle := strings.ToLower(term)

	for _, field := range []string{q.Text, q.Situation, q.Author, q.ID, q.FormatCreatedAt()} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
