package wallet

import (
	"time"

	"github.com/fortunabot/fortuna/internal/models"
)

// GetBalanceInput contains parameters for retrieving a balance
type GetBalanceInput struct {
	AccountID string
}

// GetBalanceOutput contains the account balances
type GetBalanceOutput struct {
	Account *models.Account
}

// CreditInput contains parameters for adding to a wallet
type CreditInput struct {
	AccountID string
	Amount    float64
}

// CreditOutput contains the updated account
type CreditOutput struct {
	Account *models.Account
}

// DebitInput contains parameters for taking from a wallet
type DebitInput struct {
	AccountID string
	Amount    float64
}

// DebitOutput contains the updated account
type DebitOutput struct {
	Account *models.Account
}

// DepositInput contains parameters for moving wallet funds into the bank.
// Amount is a bet-style expression resolved against the wallet.
type DepositInput struct {
	AccountID string
	Amount    string
}

// DepositOutput contains the amount moved and the updated account
type DepositOutput struct {
	Amount  float64
	Account *models.Account
}

// WithdrawInput contains parameters for moving bank funds into the wallet.
// Amount is a bet-style expression resolved against the bank.
type WithdrawInput struct {
	AccountID string
	Amount    string
}

// WithdrawOutput contains the amount moved and the updated account
type WithdrawOutput struct {
	Amount  float64
	Account *models.Account
}

// WagerInput contains a bet expression to resolve against the wallet and
// debit in one step
type WagerInput struct {
	AccountID string
	Bet       string
}

// WagerOutput contains the resolved stake and the updated account
type WagerOutput struct {
	Amount  float64
	Account *models.Account
}

// WagerSplitInput contains per-band bet expressions to resolve and debit in
// one step
type WagerSplitInput struct {
	AccountID string
	Bets      map[models.Band]string
}

// WagerSplitOutput contains the resolved per-band stakes and their total
type WagerSplitOutput struct {
	Amounts map[models.Band]float64
	Total   float64
	Account *models.Account
}

// PayInput contains parameters for a transfer between two accounts
type PayInput struct {
	FromID string
	ToID   string
	Amount float64
}

// PayOutput contains the transfer breakdown and the sender's updated account
type PayOutput struct {
	// Amount is what the sender paid
	Amount float64

	// Fee is the cut taken before crediting the recipient
	Fee float64

	// Received is Amount minus Fee
	Received float64

	From *models.Account
}

// ClaimRewardInput contains parameters for claiming a timed reward
type ClaimRewardInput struct {
	AccountID string
	Kind      models.RewardKind
}

// ClaimRewardOutput contains the claim result. When the reward is still on
// cooldown, Claimed is false and RetryAt holds the next eligible time.
type ClaimRewardOutput struct {
	Claimed bool

	// Amount is the wallet delta; negative for a failed crime
	Amount float64

	Account *models.Account
	RetryAt time.Time
}

// LeaderboardInput contains parameters for the net worth ranking
type LeaderboardInput struct {
	Limit int
}

// LeaderboardOutput contains the ranked accounts
type LeaderboardOutput struct {
	Accounts []*models.Account
}
