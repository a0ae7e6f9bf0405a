package models

// Account is a user's two-bucket balance. Both buckets are clamped to >= 0
// and rounded to 2 decimal places on every write; the account repository owns
// that contract.
type Account struct {
	// ID is the platform user ID
	ID string `json:"id"`

	// Wallet is the spendable balance; every wager debits from here
	Wallet float64 `json:"wallet"`

	// Bank is the protected balance; only deposit/withdraw touch it
	Bank float64 `json:"bank"`
}

// Networth is the leaderboard ordering key.
func (a *Account) Networth() float64 {
	return a.Wallet + a.Bank
}

// RewardKind identifies a cooldown-gated reward claim.
type RewardKind string

const (
	RewardDaily   RewardKind = "daily"
	RewardWeekly  RewardKind = "weekly"
	RewardMonthly RewardKind = "monthly"
	RewardBeg     RewardKind = "beg"
	RewardSearch  RewardKind = "search"
	RewardCrime   RewardKind = "crime"
)
