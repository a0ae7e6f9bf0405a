package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/services/round"
)

// TowerCommand handles the /tower command
type TowerCommand struct {
	BaseCommand
	bot *Bot
}

// NewTowerCommand creates a new tower command handler
func NewTowerCommand(bot *Bot) *TowerCommand {
	return &TowerCommand{
		BaseCommand: BaseCommand{
			Name:        "tower",
			Description: "Climb ten levels, two of three lanes are safe on each",
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

// Handle processes a Discord interaction for the tower command
func (c *TowerCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	surface, err := c.bot.startRoundMessage(s, i, "🗼 Tower")
	if err != nil {
		return err
	}

	_, err = c.bot.roundService.StartTower(context.Background(), &round.StartTowerInput{
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
