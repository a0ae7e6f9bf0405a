package wallet

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/fortunabot/fortuna/internal/services/wallet Service

import "context"

// Service defines the interface for the ledger. Every balance mutation in the
// system goes through it; games never write to accounts directly.
type Service interface {
	// GetBalance retrieves an account's wallet and bank balances
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// Credit adds to an account's wallet
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)

	// Debit removes from an account's wallet, failing without mutation when
	// the wallet cannot cover the amount
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)

	// Deposit moves wallet funds into the bank
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)

	// Withdraw moves bank funds into the wallet
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// Wager resolves a bet expression against the wallet and debits it as a
	// single unit, so the balance cannot change between the check and the
	// debit
	Wager(ctx context.Context, input *WagerInput) (*WagerOutput, error)

	// WagerSplit resolves split-band bet expressions and debits the total as
	// a single unit
	WagerSplit(ctx context.Context, input *WagerSplitInput) (*WagerSplitOutput, error)

	// Pay transfers between accounts, taking a tiered fee from the amount
	Pay(ctx context.Context, input *PayInput) (*PayOutput, error)

	// ClaimReward grants a cooldown-gated reward
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)

	// Leaderboard retrieves the top accounts by net worth
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}
