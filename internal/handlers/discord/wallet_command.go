package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/services/messaging"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// WalletCommand handles the /wallet command
type WalletCommand struct {
	BaseCommand
	walletService    wallet.Service
	messagingService messaging.Service
}

// NewWalletCommand creates a new wallet command handler
func NewWalletCommand(walletService wallet.Service, messagingService messaging.Service) *WalletCommand {
	return &WalletCommand{
		BaseCommand: BaseCommand{
			Name:        "wallet",
			Description: "Coins, banking and rewards",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "balance",
					Description: "Show your wallet and bank balances",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "deposit",
					Description: "Move coins from your wallet into the bank",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "amount",
							Description: "Amount, or quarter/half/all",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "withdraw",
					Description: "Move coins from the bank into your wallet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "amount",
							Description: "Amount, or quarter/half/all",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pay",
					Description: "Send coins to another player (a fee applies above 1000)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "to",
							Description: "Who to pay",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "amount",
							Description: "Amount to send",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "claim",
					Description: "Claim a timed reward",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Which reward to claim",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "daily", Value: string(models.RewardDaily)},
								{Name: "weekly", Value: string(models.RewardWeekly)},
								{Name: "monthly", Value: string(models.RewardMonthly)},
								{Name: "beg", Value: string(models.RewardBeg)},
								{Name: "search", Value: string(models.RewardSearch)},
								{Name: "crime", Value: string(models.RewardCrime)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "top",
					Description: "Show the richest players by net worth",
				},
			},
		},
		walletService:    walletService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the wallet command
func (c *WalletCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, username := interactionUser(i)
	sub := data.Options[0]

	switch sub.Name {
	case "balance":
		return c.handleBalance(s, i, userID, username)
	case "deposit":
		return c.handleDeposit(s, i, userID, sub)
	case "withdraw":
		return c.handleWithdraw(s, i, userID, sub)
	case "pay":
		return c.handlePay(s, i, userID, sub)
	case "claim":
		return c.handleClaim(s, i, userID, sub)
	case "top":
		return c.handleTop(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *WalletCommand) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	out, err := c.walletService.GetBalance(context.Background(), &wallet.GetBalanceInput{
		AccountID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's balance", username),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wallet", Value: formatCoins(out.Account.Wallet), Inline: true},
			{Name: "Bank", Value: formatCoins(out.Account.Bank), Inline: true},
			{Name: "Net worth", Value: formatCoins(out.Account.Networth()), Inline: true},
		},
	})
}

func (c *WalletCommand) handleDeposit(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)

	out, err := c.walletService.Deposit(context.Background(), &wallet.DepositInput{
		AccountID: userID,
		Amount:    opts["amount"].StringValue(),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Deposited %s. Wallet: %s, bank: %s.",
		formatCoins(out.Amount), formatCoins(out.Account.Wallet), formatCoins(out.Account.Bank),
	))
}

func (c *WalletCommand) handleWithdraw(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)

	out, err := c.walletService.Withdraw(context.Background(), &wallet.WithdrawInput{
		AccountID: userID,
		Amount:    opts["amount"].StringValue(),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Withdrew %s. Wallet: %s, bank: %s.",
		formatCoins(out.Amount), formatCoins(out.Account.Wallet), formatCoins(out.Account.Bank),
	))
}

func (c *WalletCommand) handlePay(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)
	to := opts["to"].UserValue(s)

	out, err := c.walletService.Pay(context.Background(), &wallet.PayInput{
		FromID: userID,
		ToID:   to.ID,
		Amount: opts["amount"].FloatValue(),
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	msg := fmt.Sprintf("Paid %s to %s.", formatCoins(out.Received), to.Mention())
	if out.Fee > 0 {
		msg = fmt.Sprintf("Paid %s to %s (%s fee).", formatCoins(out.Received), to.Mention(), formatCoins(out.Fee))
	}
	return RespondWithMessage(s, i, msg)
}

func (c *WalletCommand) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	opts := subcommandOptions(sub)
	kind := models.RewardKind(opts["kind"].StringValue())

	out, err := c.walletService.ClaimReward(context.Background(), &wallet.ClaimRewardInput{
		AccountID: userID,
		Kind:      kind,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	if !out.Claimed {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
			"Your %s is still on cooldown. Try again <t:%d:R>.", kind, out.RetryAt.Unix(),
		))
	}

	flavor := fmt.Sprintf("Your %s got you %s!", kind, formatCoins(out.Amount))
	if msg, ferr := c.messagingService.GetRewardMessage(context.Background(), &messaging.GetRewardMessageInput{
		Kind:   kind,
		Amount: out.Amount,
	}); ferr == nil {
		flavor = msg.Message
	}

	if out.Amount < 0 {
		return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Busted!",
			Description: fmt.Sprintf("%s Wallet: %s.", flavor, formatCoins(out.Account.Wallet)),
			Color:       colorError,
		})
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Reward claimed",
		Description: fmt.Sprintf("%s Wallet: %s.", flavor, formatCoins(out.Account.Wallet)),
		Color:       colorSuccess,
	})
}

func (c *WalletCommand) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.walletService.Leaderboard(context.Background(), &wallet.LeaderboardInput{})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	if len(out.Accounts) == 0 {
		return RespondWithMessage(s, i, "Nobody has any coins yet.")
	}

	var b strings.Builder
	for rank, acct := range out.Accounts {
		b.WriteString(fmt.Sprintf("%d. <@%s> — %s\n", rank+1, acct.ID, formatCoins(acct.Networth())))
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🏆 Richest players",
		Description: b.String(),
		Color:       colorGold,
	})
}
