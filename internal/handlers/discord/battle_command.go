package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/services/round"
)

// BattleCommand handles the /battle command
type BattleCommand struct {
	BaseCommand
	bot *Bot
}

// NewBattleCommand creates a new battle command handler
func NewBattleCommand(bot *Bot) *BattleCommand {
	return &BattleCommand{
		BaseCommand: BaseCommand{
			Name:        "battle",
			Description: "Open cases against the other team, winners take the pot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "cases",
					Description: "Cases to open, e.g. starter_spark:2, novice_nest",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "bots",
					Description: "Fight bot teams instead of other players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "team_size",
					Description: "Players per team for a bot battle (1-4)",
				},
			},
		},
		bot: bot,
	}
}

// parseCaseSelection parses a comma-separated list of case keys with
// optional :quantity suffixes
func parseCaseSelection(input string) (map[string]int, error) {
	cases := map[string]int{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key := part
		qty := 1
		if idx := strings.IndexByte(part, ':'); idx >= 0 {
			key = strings.TrimSpace(part[:idx])
			n, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
			if err != nil {
				return nil, fmt.Errorf("bad quantity in %q", part)
			}
			qty = n
		}
		cases[key] += qty
	}
	if len(cases) == 0 {
		return nil, errors.New("no cases given")
	}
	return cases, nil
}

// Handle processes a Discord interaction for the battle command
func (c *BattleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, username := interactionUser(i)

	var (
		caseInput string
		bots      bool
		teamSize  int
	)
	for _, opt := range data.Options {
		switch opt.Name {
		case "cases":
			caseInput = opt.StringValue()
		case "bots":
			bots = opt.BoolValue()
		case "team_size":
			teamSize = int(opt.IntValue())
		}
	}

	cases, err := parseCaseSelection(caseInput)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	surface, err := c.bot.startRoundMessage(s, i, "⚔️ Case Battle")
	if err != nil {
		return err
	}

	_, err = c.bot.roundService.StartBattle(context.Background(), &round.StartBattleInput{
		ChannelID: i.ChannelID,
		HostID:    userID,
		HostName:  username,
		Cases:     cases,
		BotBattle: bots,
		TeamSize:  teamSize,
		Surface:   surface,
	})
	if err != nil {
		return c.bot.failRoundMessage(s, i, err)
	}

	return nil
}
