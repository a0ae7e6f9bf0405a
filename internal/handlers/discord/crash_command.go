package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/services/round"
)

// CrashCommand handles the /crash command
type CrashCommand struct {
	BaseCommand
	bot *Bot
}

// NewCrashCommand creates a new crash command handler
func NewCrashCommand(bot *Bot) *CrashCommand {
	autoOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        "auto",
		Description: "Cash out automatically at this multiplier",
	}

	return &CrashCommand{
		BaseCommand: BaseCommand{
			Name:        "crash",
			Description: "Ride a rising multiplier and cash out before it busts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a crash round in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "bet",
							Description: "Amount, or quarter/half/all",
							Required:    true,
						},
						autoOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the crash round in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "bet",
							Description: "Amount, or quarter/half/all",
							Required:    true,
						},
						autoOption,
					},
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the crash command
func (c *CrashCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "start":
		return c.handleStart(s, i, sub)
	case "join":
		return c.handleJoin(s, i, sub)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *CrashCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	userID, username := interactionUser(i)
	opts := subcommandOptions(sub)

	auto := 0.0
	if opt, ok := opts["auto"]; ok {
		auto = opt.FloatValue()
	}

	surface, err := c.bot.startRoundMessage(s, i, "🚀 Crash")
	if err != nil {
		return err
	}

	_, err = c.bot.roundService.StartCrash(context.Background(), &round.StartCrashInput{
		ChannelID:   i.ChannelID,
		HostID:      userID,
		HostName:    username,
		Bet:         opts["bet"].StringValue(),
		AutoCashout: auto,
		Surface:     surface,
	})
	if err != nil {
		return c.bot.failRoundMessage(s, i, err)
	}

	return nil
}

func (c *CrashCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	userID, username := interactionUser(i)
	opts := subcommandOptions(sub)
	ctx := context.Background()

	active, err := c.bot.roundService.ActiveRound(ctx, &round.ActiveRoundInput{
		ChannelID: i.ChannelID,
		Kind:      models.KindCrash,
	})
	if err != nil {
		return RespondWithError(s, i, "No crash round is open in this channel. Start one with `/crash start`.")
	}

	auto := 0.0
	if opt, ok := opts["auto"]; ok {
		auto = opt.FloatValue()
	}

	out, err := c.bot.roundService.JoinCrash(ctx, &round.JoinCrashInput{
		RoundID:     active.RoundID,
		PlayerID:    userID,
		PlayerName:  username,
		Bet:         opts["bet"].StringValue(),
		AutoCashout: auto,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're in for %s!", formatCoins(out.Amount)))
}
