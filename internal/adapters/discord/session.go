package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Config holds the Discord gateway settings.
type Config struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string

	// AppID is the application id commands are registered under.
	AppID string

	// GuildID scopes the quote command to a single guild. Guild commands
	// update instantly, unlike global ones.
	GuildID string
}

// Bot owns the gateway session and command registration.
type Bot struct {
	session *discordgo.Session
	handler *InteractionHandler
	logger  *slog.Logger
	cfg     Config
}

// NewBot creates a bot around a fresh gateway session. The session is not
// opened until Start.
func NewBot(cfg Config, handler *InteractionHandler, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	// The bot only reacts to interactions; no message content intent needed.
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session: session,
		handler: handler,
		logger:  logger,
		cfg:     cfg,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start opens the gateway connection and registers the commands.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	if err := b.registerCommands(ctx); err != nil {
		b.session.Close()
		return err
	}

	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

// registerCommands overwrites the command sets so removed commands
// disappear from Discord instead of lingering.
func (b *Bot) registerCommands(ctx context.Context) error {
	guildCommands := []*discordgo.ApplicationCommand{quoteCommand()}
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.cfg.AppID, b.cfg.GuildID, guildCommands, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to register guild commands: %w", err)
	}

	globalCommands := []*discordgo.ApplicationCommand{toCodeCommand()}
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.cfg.AppID, "", globalCommands, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to register global commands: %w", err)
	}

	b.logger.Info("registered application commands",
		slog.String("guild_id", b.cfg.GuildID),
		slog.Int("guild_commands", len(guildCommands)),
		slog.Int("global_commands", len(globalCommands)),
	)

	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("discord gateway ready",
		slog.String("username", r.User.Username),
		slog.Int("guilds", len(r.Guilds)),
	)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handler.Handle(s, i)
}

// Name implements the health checker interface.
func (b *Bot) Name() string {
	return "discord"
}

// Check reports whether the gateway session is connected and ready.
func (b *Bot) Check(_ context.Context) error {
	if b.session == nil || !b.session.DataReady {
		return fmt.Errorf("discord gateway not ready")
	}

	return nil
}
