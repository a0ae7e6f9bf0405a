package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/services/round"
)

// SliderCommand handles the /slider command
type SliderCommand struct {
	BaseCommand
	bot *Bot
}

// sliderBetOptions are the per-band bet inputs shared by start and join
func sliderBetOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "bronze",
			Description: "Bet on bronze (pays x2)",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "silver",
			Description: "Bet on silver (pays x2)",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "gold",
			Description: "Bet on gold (pays x14)",
		},
	}
}

// NewSliderCommand creates a new slider command handler
func NewSliderCommand(bot *Bot) *SliderCommand {
	return &SliderCommand{
		BaseCommand: BaseCommand{
			Name:        "slider",
			Description: "Bet on which band the slider lands in",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a slider round in this channel",
					Options:     sliderBetOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the slider round in this channel",
					Options:     sliderBetOptions(),
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the slider command
func (c *SliderCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

// bandBets collects the per-band bet expressions from the options
func bandBets(sub *discordgo.ApplicationCommandInteractionDataOption) map[models.Band]string {
	opts := subcommandOptions(sub)
	bets := map[models.Band]string{}
	for name, band := range map[string]models.Band{
		"bronze": models.BandBronze,
		"silver": models.BandSilver,
		"gold":   models.BandGold,
	} {
		if opt, ok := opts[name]; ok {
			bets[band] = opt.StringValue()
		}
	}
	return bets
}

func (c *SliderCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	userID, username := interactionUser(i)
	bets := bandBets(sub)
	if len(bets) == 0 {
		return RespondWithError(s, i, "Place at least one bet: bronze, silver or gold.")
	}

	surface, err := c.bot.startRoundMessage(s, i, "🎯 Slider")
	if err != nil {
		return err
	}

	_, err = c.bot.roundService.StartSlider(context.Background(), &round.StartSliderInput{
		ChannelID: i.ChannelID,
		HostID:    userID,
		HostName:  username,
		Bets:      bets,
		Surface:   surface,
	})
	if err != nil {
		return c.bot.failRoundMessage(s, i, err)
	}

	return nil
}

func (c *SliderCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	userID, username := interactionUser(i)
	bets := bandBets(sub)
	if len(bets) == 0 {
		return RespondWithError(s, i, "Place at least one bet: bronze, silver or gold.")
	}

	ctx := context.Background()
	active, err := c.bot.roundService.ActiveRound(ctx, &round.ActiveRoundInput{
		ChannelID: i.ChannelID,
		Kind:      models.KindSlider,
	})
	if err != nil {
		return RespondWithError(s, i, "No slider round is open in this channel. Start one with `/slider start`.")
	}

	out, err := c.bot.roundService.JoinSlider(ctx, &round.JoinSliderInput{
		RoundID:    active.RoundID,
		PlayerID:   userID,
		PlayerName: username,
		Bets:       bets,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're in for %s!", formatCoins(out.Amount)))
}
