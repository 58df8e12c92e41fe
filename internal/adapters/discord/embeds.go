package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/AutMai/discord-net/internal/app"
	"github.com/AutMai/discord-net/internal/ports"
)

// Embed colors by render style, one per command outcome.
const (
	colorGreen  = 0x2ECC71 // add
	colorRed    = 0xE74C3C // delete
	colorPurple = 0x9B59B6 // random
	colorOrange = 0xE67E22 // list / navigation
	colorBlue   = 0x3498DB // search
)

// styleColor maps a render style to its embed color.
func styleColor(style ports.RenderStyle) int {
	switch style {
	case ports.StyleSuccess:
		return colorGreen
	case ports.StyleWarning:
		return colorRed
	case ports.StyleRandom:
		return colorPurple
	case ports.StylePaging:
		return colorOrange
	default:
		return colorBlue
	}
}

// embedFromUnit maps a rendered unit onto a Discord embed.
func embedFromUnit(unit *ports.RenderedUnit) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       unit.Title,
		Description: unit.Description,
		Color:       styleColor(unit.Style),
	}

	if unit.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: unit.Footer}
	}

	for _, field := range unit.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  field.Name,
			Value: field.Value,
		})
	}

	return embed
}

// navComponents builds the Previous/Next buttons for a paginated message.
// The rendered position rides along in the custom ids.
func navComponents(position int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: navCustomID(app.DirectionPrevious, position),
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.SecondaryButton,
					CustomID: navCustomID(app.DirectionNext, position),
				},
			},
		},
	}
}
