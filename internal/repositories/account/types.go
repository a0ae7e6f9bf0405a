package account

import (
	"time"

	"github.com/fortunabot/fortuna/internal/models"
)

// GetAccountInput contains parameters for retrieving an account
type GetAccountInput struct {
	AccountID string
}

// SaveAccountInput contains parameters for saving an account
type SaveAccountInput struct {
	Account *models.Account
}

// GetTopAccountsInput contains parameters for the net worth ranking
type GetTopAccountsInput struct {
	Limit int
}

// GetTopAccountsOutput contains the ranked accounts
type GetTopAccountsOutput struct {
	Accounts []*models.Account
}

// GetCooldownInput contains parameters for retrieving a cooldown
type GetCooldownInput struct {
	AccountID string
	Kind      models.RewardKind
}

// GetCooldownOutput contains the cooldown expiry, if one is recorded
type GetCooldownOutput struct {
	ExpiresAt time.Time
	Found     bool
}

// SetCooldownInput contains parameters for recording a cooldown
type SetCooldownInput struct {
	AccountID string
	Kind      models.RewardKind
	ExpiresAt time.Time
}
