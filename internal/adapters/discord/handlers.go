package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AutMai/discord-net/internal/app"
	"github.com/AutMai/discord-net/internal/domain"
	"github.com/AutMai/discord-net/internal/platform/metrics"
	"github.com/AutMai/discord-net/internal/ports"
)

const instrumentationName = "github.com/AutMai/discord-net/internal/adapters/discord"

// DefaultInteractionTimeout bounds the store work for one interaction.
// Discord voids the interaction token after 3 seconds anyway.
const DefaultInteractionTimeout = 3 * time.Second

// responder is the slice of discordgo.Session the handler needs.
// Narrowing it keeps the handler testable without a gateway connection.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// InteractionHandler routes inbound interactions to the quote service and
// renders the results back as interaction responses.
type InteractionHandler struct {
	service *app.QuoteService
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	timeout time.Duration

	// pendingSnippets holds message content between a "To Code" command and
	// its modal submission, keyed by user id. One pending snippet per user;
	// a second command before submitting replaces the first.
	mu              sync.Mutex
	pendingSnippets map[string]string
}

// NewInteractionHandler creates an interaction handler.
func NewInteractionHandler(service *app.QuoteService, logger *slog.Logger, m *metrics.Metrics) *InteractionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &InteractionHandler{
		service:         service,
		logger:          logger,
		metrics:         m,
		tracer:          otel.Tracer(instrumentationName),
		timeout:         DefaultInteractionTimeout,
		pendingSnippets: make(map[string]string),
	}
}

// Handle is the single entry point for all interaction events.
// Each event runs to completion independently; discordgo dispatches them on
// separate goroutines and the handler shares no per-event state.
func (h *InteractionHandler) Handle(rsp responder, i *discordgo.InteractionCreate) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case CommandQuote:
			h.handleQuoteCommand(ctx, rsp, i, data)
		case CommandToCode:
			h.handleToCode(rsp, i, data)
		}
		h.metrics.ObserveInteraction("command", start)

	case discordgo.InteractionMessageComponent:
		h.handleNavigation(ctx, rsp, i)
		h.metrics.ObserveInteraction("component", start)

	case discordgo.InteractionModalSubmit:
		h.handleCodeModal(rsp, i)
		h.metrics.ObserveInteraction("modal", start)
	}
}

// handleQuoteCommand dispatches the /quote subcommands.
func (h *InteractionHandler) handleQuoteCommand(ctx context.Context, rsp responder, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	guildID := i.GuildID

	ctx, span := h.tracer.Start(ctx, "quote."+sub.Name,
		trace.WithAttributes(
			attribute.String("discord.guild_id", guildID),
			attribute.String("quote.subcommand", sub.Name),
		))
	defer span.End()

	var (
		unit *ports.RenderedUnit
		page *app.Page
		err  error
	)

	switch sub.Name {
	case "add":
		unit, err = h.service.Add(ctx, guildID,
			stringOption(sub, "quote"), stringOption(sub, "situation"), interactionUser(i))
	case "delete":
		unit, err = h.service.Delete(ctx, stringOption(sub, "id"))
	case "random":
		unit, err = h.service.Random(ctx, guildID)
	case "list":
		page, err = h.service.List(ctx, guildID)
	case "search":
		unit, err = h.service.Search(ctx, guildID, stringOption(sub, "search-term"))
	default:
		return
	}

	if err != nil {
		span.RecordError(err)
		h.metrics.ObserveCommand(sub.Name, metrics.OutcomeError)
		h.respondError(rsp, i, err)
		return
	}

	h.metrics.ObserveCommand(sub.Name, metrics.OutcomeOK)

	if page != nil {
		h.respond(rsp, i, embedFromUnit(page.Unit), navComponents(page.Position))
		return
	}

	h.respond(rsp, i, embedFromUnit(unit), nil)
}

// handleNavigation handles a Previous/Next click on a paginated message.
// The position at last render is recovered from the button id (or, for
// legacy messages, the footer marker), the list is re-fetched and the same
// message is updated in place. Concurrent clicks race; the last update wins.
func (h *InteractionHandler) handleNavigation(ctx context.Context, rsp responder, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	ctx, span := h.tracer.Start(ctx, "quote.navigate",
		trace.WithAttributes(attribute.String("discord.guild_id", i.GuildID)))
	defer span.End()

	dir, position, err := decodeNav(data.CustomID, i.Message)
	if err != nil {
		span.RecordError(err)
		h.respondError(rsp, i, err)
		return
	}

	page, err := h.service.Navigate(ctx, i.GuildID, position, dir)
	if err != nil {
		span.RecordError(err)
		h.respondError(rsp, i, err)
		return
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embedFromUnit(page.Unit)},
			Components: navComponents(page.Position),
		},
	}

	if err := rsp.InteractionRespond(i.Interaction, response); err != nil {
		h.logger.Error("failed to update paginated message", slog.Any("error", err))
	}
}

// handleToCode handles the "To Code" message command: remember the target
// message's content, delete it and ask for a language via modal.
func (h *InteractionHandler) handleToCode(rsp responder, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	target, ok := data.Resolved.Messages[data.TargetID]
	if !ok {
		h.respondError(rsp, i, domain.NewValidationError("message", "message content is not available"))
		return
	}

	h.mu.Lock()
	h.pendingSnippets[interactionUserID(i)] = target.Content
	h.mu.Unlock()

	if err := rsp.ChannelMessageDelete(i.ChannelID, data.TargetID); err != nil {
		h.logger.Warn("failed to delete original message", slog.Any("error", err))
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: codeModalID,
			Title:    "Language Highlighting",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    codeModalLangInput,
							Label:       "Which language?",
							Style:       discordgo.TextInputShort,
							Placeholder: "csharp",
						},
					},
				},
			},
		},
	}

	if err := rsp.InteractionRespond(i.Interaction, response); err != nil {
		h.logger.Error("failed to open language modal", slog.Any("error", err))
	}
}

// handleCodeModal reposts the remembered message as a fenced code block.
func (h *InteractionHandler) handleCodeModal(rsp responder, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if data.CustomID != codeModalID {
		return
	}

	lang := modalInputValue(data, codeModalLangInput)

	h.mu.Lock()
	content := h.pendingSnippets[interactionUserID(i)]
	delete(h.pendingSnippets, interactionUserID(i))
	h.mu.Unlock()

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("```%s\n%s```", lang, content),
		},
	}

	if err := rsp.InteractionRespond(i.Interaction, response); err != nil {
		h.logger.Error("failed to post code block", slog.Any("error", err))
	}
}

// respond sends a new channel message as the interaction response.
func (h *InteractionHandler) respond(rsp responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}

	if err := rsp.InteractionRespond(i.Interaction, response); err != nil {
		h.logger.Error("failed to respond to interaction", slog.Any("error", err))
	}
}

// respondError maps a domain error onto a friendly, ephemeral reply.
// Store faults are logged in full but surfaced generically.
func (h *InteractionHandler) respondError(rsp responder, i *discordgo.InteractionCreate, err error) {
	message := friendlyError(err)

	if domain.IsUnavailable(err) || !isUserFault(err) {
		h.logger.Error("interaction failed",
			slog.String("guild_id", i.GuildID),
			slog.Any("error", err),
		)
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}

	if respondErr := rsp.InteractionRespond(i.Interaction, response); respondErr != nil {
		h.logger.Error("failed to send error response", slog.Any("error", respondErr))
	}
}

// friendlyError translates domain errors into user-facing text.
func friendlyError(err error) string {
	switch {
	case domain.IsValidation(err):
		return "That input doesn't look right: " + err.Error()
	case domain.IsNotFound(err):
		return "No quote with that id exists."
	case domain.IsEmptyCollection(err):
		return "There are no quotes here yet. Add one with `/quote add`."
	default:
		return "Something went wrong talking to the quote store. Please try again later."
	}
}

// isUserFault reports whether the error was caused by user input rather
// than by the bot or its dependencies.
func isUserFault(err error) bool {
	return domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsEmptyCollection(err)
}

// stringOption extracts a named string option from a subcommand.
func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}

	return ""
}

// modalInputValue extracts a text input value from submitted modal data.
func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}

	return ""
}

// interactionUser returns the display name of the interacting member.
func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}

	return "unknown"
}

// interactionUserID returns the id of the interacting member.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}

	return ""
}
