package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/services/arcade"
	"github.com/fortunabot/fortuna/internal/services/messaging"
	"github.com/fortunabot/fortuna/internal/services/round"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	walletService    wallet.Service
	roundService     round.Service
	arcadeService    arcade.Service
	messagingService messaging.Service

	logger zerolog.Logger
	config *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	WalletService    wallet.Service
	RoundService     round.Service
	ArcadeService    arcade.Service
	MessagingService messaging.Service

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}
	if cfg.WalletService == nil {
		return nil, errors.New("wallet service cannot be nil")
	}
	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}
	if cfg.ArcadeService == nil {
		return nil, errors.New("arcade service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		walletService:    cfg.WalletService,
		roundService:     cfg.RoundService,
		arcadeService:    cfg.ArcadeService,
		messagingService: cfg.MessagingService,
		logger:           cfg.Logger.With().Str("component", "discord").Logger(),
		config:           cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers every command
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewWalletCommand(b.walletService, b.messagingService),
		NewPlayCommand(b.arcadeService, b.messagingService),
		NewCrashCommand(b),
		NewSliderCommand(b),
		NewTowerCommand(b),
		NewHighLowCommand(b),
		NewBattleCommand(b),
	}
	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	b.logger.Info().Msg("bot is running")
	return nil
}

// Stop deletes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// With a guild ID the command is registered for that guild only,
	// otherwise globally
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("id", createdCmd.ID).
		Msg("registered command")

	return nil
}

// handleInteraction routes Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("command failed")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("component interaction failed")
		}
	}
}

// handleComponentInteraction handles button clicks on round messages. Custom
// IDs carry the action, the round ID and optionally the chosen move.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	parts := strings.SplitN(i.MessageComponentData().CustomID, ":", 3)
	action := parts[0]

	roundID := ""
	if len(parts) > 1 {
		roundID = parts[1]
	}
	arg := ""
	if len(parts) > 2 {
		arg = parts[2]
	}

	userID, username := interactionUser(i)
	ctx := context.Background()

	switch action {
	case componentCrashCashOut:
		return b.handleCrashCashOut(ctx, s, i, roundID, userID)
	case componentTowerMove:
		return b.handleTowerMove(ctx, s, i, roundID, userID, arg)
	case componentTowerCashOut:
		return b.handleTowerCashOut(ctx, s, i, roundID, userID)
	case componentHighLowGuess:
		return b.handleHighLowGuess(ctx, s, i, roundID, userID, arg)
	case componentBattleJoin:
		return b.handleBattleJoin(ctx, s, i, roundID, userID, username)
	case componentBattleBegin:
		return b.handleBattleBegin(ctx, s, i, roundID, userID)
	case componentBattleCancel:
		return b.handleBattleCancel(ctx, s, i, roundID, userID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", action))
	}
}

// ackUpdate silently acknowledges a component click; the round surface edit
// carries the new state
func ackUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

func (b *Bot) handleCrashCashOut(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID string) error {
	out, err := b.roundService.CashOut(ctx, &round.CashOutInput{
		RoundID:  roundID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Cashed out at %s for %s!", formatMultiplier(out.Multiplier), formatCoins(out.Payout),
	))
}

func (b *Bot) handleTowerMove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID, arg string) error {
	lane, err := strconv.Atoi(arg)
	if err != nil {
		return RespondWithError(s, i, "Bad lane")
	}

	out, err := b.roundService.TowerMove(ctx, &round.TowerMoveInput{
		RoundID:  roundID,
		PlayerID: userID,
		Lane:     lane,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	if out.Settled && out.Safe {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
			"You cleared the tower for %s!", formatCoins(out.Payout),
		))
	}
	return ackUpdate(s, i)
}

func (b *Bot) handleTowerCashOut(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID string) error {
	out, err := b.roundService.TowerCashOut(ctx, &round.TowerCashOutInput{
		RoundID:  roundID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Cashed out at level %d for %s!", out.Level, formatCoins(out.Payout),
	))
}

func (b *Bot) handleHighLowGuess(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID, arg string) error {
	_, err := b.roundService.Guess(ctx, &round.GuessInput{
		RoundID:  roundID,
		PlayerID: userID,
		Guess:    models.Guess(arg),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return ackUpdate(s, i)
}

func (b *Bot) handleBattleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID, username string) error {
	out, err := b.roundService.JoinBattle(ctx, &round.JoinBattleInput{
		RoundID:    roundID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're in, on team %d!", out.Team))
}

func (b *Bot) handleBattleBegin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID string) error {
	_, err := b.roundService.BeginBattle(ctx, &round.BeginBattleInput{
		RoundID:  roundID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return ackUpdate(s, i)
}

func (b *Bot) handleBattleCancel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, roundID, userID string) error {
	_, err := b.roundService.CancelBattle(ctx, &round.CancelBattleInput{
		RoundID:  roundID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return ackUpdate(s, i)
}

// startRoundMessage posts the message a new round will render into and
// returns its surface. Rounds edit this message for their whole lifetime.
func (b *Bot) startRoundMessage(s *discordgo.Session, i *discordgo.InteractionCreate, title string) (*messageSurface, error) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{Title: title, Description: "Setting up...", Color: colorInfo},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return nil, err
	}

	return newMessageSurface(s, msg.ChannelID, msg.ID), nil
}

// failRoundMessage replaces the placeholder with the error after the round
// could not start
func (b *Bot) failRoundMessage(s *discordgo.Session, i *discordgo.InteractionCreate, startErr error) error {
	content := ""
	embeds := []*discordgo.MessageEmbed{
		{Title: "Error", Description: startErr.Error(), Color: colorError},
	}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &embeds,
	})
	return err
}
