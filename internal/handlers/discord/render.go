package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/services/round"
)

// Embed colors
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorError   = 0xe74c3c
	colorGold    = 0xf1c40f
)

// Component custom ID prefixes. Round-bound components carry the round ID,
// and for moves the chosen option, separated by colons.
const (
	componentCrashCashOut = "crash_cashout"
	componentTowerMove    = "tower_move"
	componentTowerCashOut = "tower_cashout"
	componentHighLowGuess = "highlow_guess"
	componentBattleJoin   = "battle_join"
	componentBattleBegin  = "battle_begin"
	componentBattleCancel = "battle_cancel"
)

func componentID(parts ...string) string {
	return strings.Join(parts, ":")
}

func formatCoins(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return s + " coins"
}

func formatMultiplier(v float64) string {
	return "x" + strconv.FormatFloat(v, 'f', 2, 64)
}

// renderView builds the embed and components for a round snapshot
func renderView(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	switch v.Kind {
	case models.KindCrash:
		return renderCrash(v)
	case models.KindSlider:
		return renderSlider(v)
	case models.KindTower:
		return renderTower(v)
	case models.KindHighLow:
		return renderHighLow(v)
	case models.KindBattle:
		return renderBattle(v)
	}
	return &discordgo.MessageEmbed{Title: "Unknown game"}, nil
}

func actionsRow(buttons ...discordgo.MessageComponent) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return []discordgo.MessageComponent{}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func stakeLines(stakes []models.Stake) string {
	if len(stakes) == 0 {
		return "Nobody yet"
	}

	var b strings.Builder
	for _, st := range stakes {
		b.WriteString(fmt.Sprintf("**%s** — %s", st.PlayerName, formatCoins(st.Amount)))
		if st.AutoCashout > 0 {
			b.WriteString(fmt.Sprintf(" (auto %s)", formatMultiplier(st.AutoCashout)))
		}
		if st.Settled {
			if st.Result > 0 {
				b.WriteString(fmt.Sprintf(" → won %s", formatCoins(st.Result)))
			} else {
				b.WriteString(" → lost")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCrash(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "🚀 Crash",
		Color: colorInfo,
	}

	var components []discordgo.MessageComponent

	switch v.Phase {
	case models.PhaseLobby, models.PhaseCountdown:
		embed.Description = fmt.Sprintf("Launching in **%d**s. Join with `/crash join`.", v.Countdown)
	case models.PhaseActive:
		embed.Description = fmt.Sprintf("## %s", formatMultiplier(v.Multiplier))
		components = actionsRow(discordgo.Button{
			Label:    "Cash Out",
			Style:    discordgo.SuccessButton,
			CustomID: componentID(componentCrashCashOut, v.ID),
		})
	default:
		if v.Crashed {
			embed.Description = fmt.Sprintf("💥 Crashed at **%s**", formatMultiplier(v.CrashPoint))
			embed.Color = colorError
		} else if v.ForceClosed {
			embed.Description = "Round closed; all open stakes returned."
		} else {
			embed.Description = "Round over."
		}
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Players", Value: stakeLines(v.Stakes)},
	}

	return embed, components
}

var sliderIcons = map[models.Band]string{
	models.BandBronze: "🥉",
	models.BandSilver: "🥈",
	models.BandGold:   "🥇",
}

// sliderStrip draws the reel with the pointer row under it
func sliderStrip(strip []models.Band) string {
	if len(strip) == 0 {
		return "The slider is spinning..."
	}
	var b strings.Builder
	for _, band := range strip {
		b.WriteString(sliderIcons[band])
	}
	b.WriteString("\n🟦🟦🟦🟦⬆️🟦🟦🟦🟦")
	return b.String()
}

func renderSlider(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "🎯 Slider",
		Color: colorInfo,
	}

	switch v.Phase {
	case models.PhaseLobby, models.PhaseCountdown:
		embed.Description = fmt.Sprintf(
			"Sliding in **%d**s. Join with `/slider join`.\nBronze and silver pay x2, gold pays x14.",
			v.Countdown,
		)
	case models.PhaseActive:
		embed.Description = sliderStrip(v.Strip)
	default:
		if v.ForceClosed {
			embed.Description = "Round closed; all open stakes returned."
		} else {
			embed.Description = fmt.Sprintf("%s\nThe slider landed on **%s**!", sliderStrip(v.Strip), v.WinningBand)
			embed.Color = colorGold
		}
	}

	var b strings.Builder
	for _, st := range v.Stakes {
		b.WriteString(fmt.Sprintf("**%s**", st.PlayerName))
		for _, band := range []models.Band{models.BandBronze, models.BandSilver, models.BandGold} {
			if amt, ok := st.Bands[band]; ok && amt > 0 {
				b.WriteString(fmt.Sprintf(" %s %s", band, formatCoins(amt)))
			}
		}
		if st.Settled {
			if st.Result > 0 {
				b.WriteString(fmt.Sprintf(" → won %s", formatCoins(st.Result)))
			} else {
				b.WriteString(" → lost")
			}
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		b.WriteString("Nobody yet")
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Bets", Value: b.String()},
	}

	return embed, nil
}

func renderTower(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "🗼 Tower",
		Color: colorInfo,
	}

	var components []discordgo.MessageComponent

	switch v.Phase {
	case models.PhaseActive:
		next := v.Multipliers[v.Level]
		desc := fmt.Sprintf("Level **%d**/%d. Clearing the next level pays %s.",
			v.Level, len(v.Multipliers), formatMultiplier(next))
		if v.Level > 0 {
			desc += fmt.Sprintf("\nCashing out now pays %s.", formatMultiplier(v.Multipliers[v.Level-1]))
		}
		embed.Description = desc

		lanes := []discordgo.MessageComponent{}
		for lane, label := range []string{"Left", "Middle", "Right"} {
			lanes = append(lanes, discordgo.Button{
				Label:    label,
				Style:    discordgo.PrimaryButton,
				CustomID: componentID(componentTowerMove, v.ID, strconv.Itoa(lane)),
			})
		}
		lanes = append(lanes, discordgo.Button{
			Label:    "Cash Out",
			Style:    discordgo.SuccessButton,
			CustomID: componentID(componentTowerCashOut, v.ID),
			Disabled: v.Level == 0,
		})
		components = actionsRow(lanes...)
	default:
		switch {
		case v.Fell:
			embed.Description = fmt.Sprintf("💀 Fell on level %d, lane %d. The stake is gone.", v.Level+1, v.FellLane+1)
			if board := towerBoard(v); board != "" {
				embed.Description += "\n" + board
			}
			embed.Color = colorError
		case v.ForceClosed:
			embed.Description = "Round closed; the stake was returned."
		case len(v.Stakes) == 1 && v.Stakes[0].Settled && v.Stakes[0].Result > 0:
			embed.Description = fmt.Sprintf("🏆 Cashed out at level %d for %s!", v.Level, formatCoins(v.Stakes[0].Result))
			embed.Color = colorSuccess
		default:
			embed.Description = "Round over; the stake was returned."
		}
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Climber", Value: stakeLines(v.Stakes)},
	}

	return embed, components
}

// towerBoard reveals the whole ladder top down, marking the losing tile
func towerBoard(v *round.View) string {
	if len(v.SafeTiles) == 0 {
		return ""
	}

	var b strings.Builder
	for level := len(v.SafeTiles) - 1; level >= 0; level-- {
		safe := map[int]bool{}
		for _, lane := range v.SafeTiles[level] {
			safe[lane] = true
		}
		for lane := 0; lane < 3; lane++ {
			switch {
			case v.Fell && level == v.Level && lane == v.FellLane:
				b.WriteString("💥")
			case safe[lane]:
				b.WriteString("🟩")
			default:
				b.WriteString("🟥")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderHighLow(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "🔢 High-Low",
		Color: colorInfo,
	}

	var components []discordgo.MessageComponent

	switch v.Phase {
	case models.PhaseActive:
		embed.Description = fmt.Sprintf(
			"The number is **%d**. Will the next draw (1-100) be higher or lower?\nRight call pays x2, exact match pays x10.",
			v.First,
		)
		components = actionsRow(
			discordgo.Button{
				Label:    "Higher",
				Style:    discordgo.PrimaryButton,
				CustomID: componentID(componentHighLowGuess, v.ID, string(models.GuessHigher)),
			},
			discordgo.Button{
				Label:    "Lower",
				Style:    discordgo.PrimaryButton,
				CustomID: componentID(componentHighLowGuess, v.ID, string(models.GuessLower)),
			},
			discordgo.Button{
				Label:    "Exact Match",
				Style:    discordgo.DangerButton,
				CustomID: componentID(componentHighLowGuess, v.ID, string(models.GuessJackpot)),
			},
		)
	default:
		switch {
		case v.ForceClosed:
			embed.Description = "Round closed; the stake was returned."
		case v.Guess == "":
			embed.Description = fmt.Sprintf("Time ran out on **%d**; the stake was returned.", v.First)
		case v.Won:
			embed.Description = fmt.Sprintf("**%d** then **%d** — right call on *%s*!", v.First, v.Second, v.Guess)
			embed.Color = colorSuccess
		default:
			embed.Description = fmt.Sprintf("**%d** then **%d** — *%s* was wrong.", v.First, v.Second, v.Guess)
			embed.Color = colorError
		}
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Player", Value: stakeLines(v.Stakes)},
	}

	return embed, components
}

func renderBattle(v *round.View) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "⚔️ Case Battle",
		Color: colorInfo,
	}

	var components []discordgo.MessageComponent

	teamField := func(team int) *discordgo.MessageEmbedField {
		names := v.Teams[team]
		value := "Empty"
		if len(names) > 0 {
			var b strings.Builder
			for _, name := range names {
				b.WriteString(fmt.Sprintf("%s — %s\n", name, formatCoins(v.PlayerTotals[name])))
			}
			value = b.String()
		}
		return &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Team %d — %s", team, formatCoins(v.TeamTotals[team])),
			Value:  value,
			Inline: true,
		}
	}

	switch v.Phase {
	case models.PhaseLobby:
		embed.Description = fmt.Sprintf("Pot: **%s**. Each team splits the buy-in; winners take the pot.", formatCoins(v.Pot))
		components = actionsRow(
			discordgo.Button{
				Label:    "Join",
				Style:    discordgo.PrimaryButton,
				CustomID: componentID(componentBattleJoin, v.ID),
			},
			discordgo.Button{
				Label:    "Begin",
				Style:    discordgo.SuccessButton,
				CustomID: componentID(componentBattleBegin, v.ID),
			},
			discordgo.Button{
				Label:    "Cancel",
				Style:    discordgo.DangerButton,
				CustomID: componentID(componentBattleCancel, v.ID),
			},
		)
	case models.PhaseActive:
		embed.Description = fmt.Sprintf("Pot: **%s**. Opening cases...", formatCoins(v.Pot))
		if v.LastOpen != nil {
			embed.Description += fmt.Sprintf(
				"\n**%s** pulled **%s** (%s, %s)",
				v.LastOpen.PlayerName, v.LastOpen.ItemName, v.LastOpen.Rarity, formatCoins(v.LastOpen.ItemValue),
			)
		}
	default:
		switch {
		case v.ForceClosed:
			embed.Description = "Battle closed; all stakes returned."
		case v.WinningTeam == 0:
			embed.Description = "It's a tie! Everyone gets their stake back."
		default:
			embed.Description = fmt.Sprintf("🏆 **Team %d** takes the pot of %s!", v.WinningTeam, formatCoins(v.Pot))
			embed.Color = colorGold
		}
	}

	embed.Fields = []*discordgo.MessageEmbedField{teamField(1), teamField(2)}

	return embed, components
}
