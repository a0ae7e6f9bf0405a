package account

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fortunabot/fortuna/internal/repositories/account Repository

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
)

// Repository defines the interface for account data persistence
type Repository interface {
	// GetAccount retrieves an account by ID, returning a zeroed account when
	// none exists yet
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// SaveAccount persists an account, clamping both buckets to >= 0
	SaveAccount(ctx context.Context, input *SaveAccountInput) error

	// GetTopAccounts retrieves accounts ordered by net worth descending
	GetTopAccounts(ctx context.Context, input *GetTopAccountsInput) (*GetTopAccountsOutput, error)

	// GetCooldown retrieves a reward cooldown expiry for an account
	GetCooldown(ctx context.Context, input *GetCooldownInput) (*GetCooldownOutput, error)

	// SetCooldown records a reward cooldown expiry for an account
	SetCooldown(ctx context.Context, input *SetCooldownInput) error
}
