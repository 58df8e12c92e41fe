// Package discord adapts Discord interactions onto the application layer.
package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/AutMai/discord-net/internal/app"
	"github.com/AutMai/discord-net/internal/domain"
	"github.com/AutMai/discord-net/internal/ports"
)

// Command and component identifiers.
const (
	// CommandQuote is the guild-scoped slash command.
	CommandQuote = "quote"

	// CommandToCode is the global message command that reposts a message
	// as a fenced code block.
	CommandToCode = "To Code"

	// navPrefix prefixes navigation button custom ids. The button id also
	// carries the 1-based position the message was rendered at, so a click
	// recovers its state without parsing display text.
	navPrefix = "quote:nav"

	// codeModalID identifies the language-selection modal.
	codeModalID = "lang_modal"

	// codeModalLangInput identifies the language text input inside the modal.
	codeModalLangInput = "lang"
)

// quoteCommand is the slash command schema, registered per guild.
func quoteCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        CommandQuote,
		Description: "Quote operations",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Adds a new quote",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "quote",
						Description: "The quote itself",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "situation",
						Description: "Who said the quote, in which context",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Deletes a quote",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "The id of the quote",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "random",
				Description: "Gets you a random quote from the server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Gets you all quotes from the server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "search",
				Description: "Search a quote",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "search-term",
						Description: "<quote content / situation / author / id / createdAt>",
						Required:    true,
					},
				},
			},
		},
	}
}

// toCodeCommand is the global message command schema.
func toCodeCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: CommandToCode,
		Type: discordgo.MessageApplicationCommand,
	}
}

// navCustomID encodes a navigation direction and the currently rendered
// position into a button custom id.
func navCustomID(dir app.Direction, position int) string {
	return fmt.Sprintf("%s:%s:%d", navPrefix, dir, position)
}

// decodeNav recovers the navigation direction and the position at last
// render from a clicked button. New-style ids carry the position; legacy
// bare "previous"/"next" ids (messages rendered by earlier bot versions)
// fall back to the position marker in the embed footer.
func decodeNav(customID string, message *discordgo.Message) (app.Direction, int, error) {
	if rest, ok := strings.CutPrefix(customID, navPrefix+":"); ok {
		name, pos, ok := strings.Cut(rest, ":")
		if !ok {
			return 0, 0, domain.NewValidationErrorWithValue("customId", "malformed navigation id", customID)
		}

		dir, err := app.ParseDirection(name)
		if err != nil {
			return 0, 0, err
		}

		position, err := strconv.Atoi(pos)
		if err != nil || position < 1 {
			return 0, 0, domain.NewValidationErrorWithValue("customId", "malformed navigation position", customID)
		}

		return dir, position, nil
	}

	dir, err := app.ParseDirection(customID)
	if err != nil {
		return 0, 0, err
	}

	position, err := footerPosition(message)
	if err != nil {
		return 0, 0, err
	}

	return dir, position, nil
}

// footerPosition parses the "Quote N of M" marker out of the footer of the
// previously rendered embed.
func footerPosition(message *discordgo.Message) (int, error) {
	if message == nil || len(message.Embeds) == 0 || message.Embeds[0].Footer == nil {
		return 0, domain.NewValidationError("message", "no position marker to recover")
	}

	return ports.ParsePositionMarker(message.Embeds[0].Footer.Text)
}
