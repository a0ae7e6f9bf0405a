package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/services/arcade"
	"github.com/fortunabot/fortuna/internal/services/messaging"
)

// PlayCommand handles the /play command
type PlayCommand struct {
	BaseCommand
	arcadeService    arcade.Service
	messagingService messaging.Service
}

// NewPlayCommand creates a new play command handler
func NewPlayCommand(arcadeService arcade.Service, messagingService messaging.Service) *PlayCommand {
	betOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "bet",
		Description: "Amount, or quarter/half/all",
		Required:    true,
	}

	return &PlayCommand{
		BaseCommand: BaseCommand{
			Name:        "play",
			Description: "Instant wager games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "slots",
					Description: "Spin three reels",
					Options:     []*discordgo.ApplicationCommandOption{betOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "coinflip",
					Description: "Call a coin flip for even money",
					Options: []*discordgo.ApplicationCommandOption{
						betOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "guess",
							Description: "Heads or tails (heads if omitted)",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "heads", Value: string(arcade.CoinHeads)},
								{Name: "tails", Value: string(arcade.CoinTails)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gamble",
					Description: "Roll a d100 against the house",
					Options:     []*discordgo.ApplicationCommandOption{betOption},
				},
			},
		},
		arcadeService:    arcadeService,
		messagingService: messagingService,
	}
}

// outcomeLine fetches a flavor footer for a game result. Flavor is cosmetic,
// so a messaging failure never blocks the response.
func (c *PlayCommand) outcomeLine(game string, won bool, payout float64) string {
	out, err := c.messagingService.GetOutcomeMessage(context.Background(), &messaging.GetOutcomeMessageInput{
		Game:   game,
		Won:    won,
		Payout: payout,
	})
	if err != nil {
		return ""
	}
	return out.Message
}

// Handle processes a Discord interaction for the play command
func (c *PlayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, _ := interactionUser(i)
	sub := data.Options[0]

	switch sub.Name {
	case "slots":
		return c.handleSlots(s, i, userID, sub)
	case "coinflip":
		return c.handleCoinflip(s, i, userID, sub)
	case "gamble":
		return c.handleGamble(s, i, userID, sub)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *PlayCommand) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)

	out, err := c.arcadeService.Slots(context.Background(), &arcade.SlotsInput{
		PlayerID: userID,
		Bet:      opts["bet"].StringValue(),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	reels := strings.Join(out.Reels[:], " | ")
	embed := &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: fmt.Sprintf("[ %s ]", reels),
	}
	if out.Winnings > 0 {
		embed.Color = colorSuccess
		embed.Description += fmt.Sprintf("\nYou won %s! Wallet: %s.", formatCoins(out.Winnings), formatCoins(out.Balance))
	} else {
		embed.Color = colorError
		embed.Description += fmt.Sprintf("\nNo luck, %s gone. Wallet: %s.", formatCoins(out.Amount), formatCoins(out.Balance))
	}
	if line := c.outcomeLine("slots", out.Winnings > 0, out.Winnings); line != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: line}
	}

	return RespondWithEmbed(s, i, embed)
}

func (c *PlayCommand) handleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)

	input := &arcade.CoinflipInput{
		PlayerID: userID,
		Bet:      opts["bet"].StringValue(),
	}
	if guess, ok := opts["guess"]; ok {
		input.Guess = arcade.Coin(guess.StringValue())
	}

	out, err := c.arcadeService.Coinflip(context.Background(), input)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	embed := &discordgo.MessageEmbed{
		Title: "🪙 Coinflip",
	}
	if out.Won {
		embed.Color = colorSuccess
		embed.Description = fmt.Sprintf(
			"It's **%s** — you called it! You won %s. Wallet: %s.",
			out.Outcome, formatCoins(out.Amount), formatCoins(out.Balance),
		)
	} else {
		embed.Color = colorError
		embed.Description = fmt.Sprintf(
			"It's **%s** — you called %s. %s gone. Wallet: %s.",
			out.Outcome, out.Guess, formatCoins(out.Amount), formatCoins(out.Balance),
		)
	}
	if line := c.outcomeLine("coinflip", out.Won, out.Amount); line != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: line}
	}

	return RespondWithEmbed(s, i, embed)
}

func (c *PlayCommand) handleGamble(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)

	out, err := c.arcadeService.Gamble(context.Background(), &arcade.GambleInput{
		PlayerID: userID,
		Bet:      opts["bet"].StringValue(),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎲 Gamble",
	}
	switch {
	case out.Net > 0:
		embed.Color = colorSuccess
		embed.Description = fmt.Sprintf(
			"You rolled **%d** and won %s! Wallet: %s.", out.Roll, formatCoins(out.Net), formatCoins(out.Balance),
		)
	case out.Roll == 50:
		embed.Color = colorError
		embed.Description = fmt.Sprintf(
			"You rolled **50** — dead even, the house keeps half. Wallet: %s.", formatCoins(out.Balance),
		)
	default:
		embed.Color = colorError
		embed.Description = fmt.Sprintf(
			"You rolled **%d** and lost %s. Wallet: %s.", out.Roll, formatCoins(-out.Net), formatCoins(out.Balance),
		)
	}
	if line := c.outcomeLine("gamble", out.Net > 0, out.Net); line != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: line}
	}

	return RespondWithEmbed(s, i, embed)
}
