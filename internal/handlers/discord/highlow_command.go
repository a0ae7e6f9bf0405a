package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/services/round"
)

// HighLowCommand handles the /highlow command
type HighLowCommand struct {
	BaseCommand
	bot *Bot
}

// NewHighLowCommand creates a new highlow command handler
func NewHighLowCommand(bot *Bot) *HighLowCommand {
	return &HighLowCommand{
		BaseCommand: BaseCommand{
			Name:        "highlow",
			Description: "Guess whether the next number is higher or lower",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "bet",
					Description: "Amount, or quarter/half/all",
					Required:    true,
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the highlow command
func (c *HighLowCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, username := interactionUser(i)

	bet := ""
	for _, opt := range data.Options {
		if opt.Name == "bet" {
			bet = opt.StringValue()
		}
	}

	surface, err := c.bot.startRoundMessage(s, i, "🔢 High-Low")
	if err != nil {
		return err
	}

	_, err = c.bot.roundService.StartHighLow(context.Background(), &round.StartHighLowInput{
		ChannelID:  i.ChannelID,
		PlayerID:   userID,
		PlayerName: username,
		Bet:        bet,
		Surface:    surface,
	})
	if err != nil {
		return c.bot.failRoundMessage(s, i, err)
	}

	return nil
}
