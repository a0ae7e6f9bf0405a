package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
)

const (
	// Key prefixes for Redis
	accountKeyPrefix  = "account:"
	cooldownKeyPrefix = "cooldown:"

	// networthKey is the sorted set ranking accounts by wallet+bank
	networthKey = "networth"
)

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetAccount retrieves an account by ID. A missing record yields a zeroed
// account rather than an error, so every identity implicitly has one.
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	accountJSON, err := r.client.Get(ctx, accountKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.Account{ID: input.AccountID}, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var acct models.Account
	if err := json.Unmarshal([]byte(accountJSON), &acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &acct, nil
}

// SaveAccount persists an account. Both buckets are clamped to zero and
// rounded to cents before the write, and the net worth ranking is updated in
// the same pipeline.
func (r *redisRepository) SaveAccount(ctx context.Context, input *SaveAccountInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	acct := input.Account

	if acct.ID == "" {
		return errors.New("account ID cannot be empty")
	}

	if acct.Wallet < 0 {
		acct.Wallet = 0
	}
	if acct.Bank < 0 {
		acct.Bank = 0
	}
	acct.Wallet = rng.Round2(acct.Wallet)
	acct.Bank = rng.Round2(acct.Bank)

	accountJSON, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	pipe := r.client.Pipeline()

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, acct.ID)
	pipe.Set(ctx, accountKey, accountJSON, 0)
	pipe.ZAdd(ctx, networthKey, redis.Z{
		Score:  acct.Networth(),
		Member: acct.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// GetTopAccounts retrieves accounts ordered by net worth descending
func (r *redisRepository) GetTopAccounts(ctx context.Context, input *GetTopAccountsInput) (*GetTopAccountsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and limit must be set")
	}

	ids, err := r.client.ZRevRange(ctx, networthKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get net worth ranking: %w", err)
	}

	if len(ids) == 0 {
		return &GetTopAccountsOutput{
			Accounts: []*models.Account{},
		}, nil
	}

	pipe := r.client.Pipeline()
	accountCommands := make([]*redis.StringCmd, len(ids))

	for i, id := range ids {
		accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, id)
		accountCommands[i] = pipe.Get(ctx, accountKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get ranked accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(ids))
	for i, cmd := range accountCommands {
		accountJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Account was deleted after it entered the ranking
				continue
			}
			return nil, fmt.Errorf("failed to get account %s: %w", ids[i], err)
		}

		var acct models.Account
		if err := json.Unmarshal([]byte(accountJSON), &acct); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account %s: %w", ids[i], err)
		}

		accounts = append(accounts, &acct)
	}

	return &GetTopAccountsOutput{
		Accounts: accounts,
	}, nil
}

// GetCooldown retrieves a reward cooldown expiry for an account
func (r *redisRepository) GetCooldown(ctx context.Context, input *GetCooldownInput) (*GetCooldownOutput, error) {
	if input == nil || input.AccountID == "" || input.Kind == "" {
		return nil, errors.New("input, account ID and kind cannot be empty")
	}

	cooldownKey := fmt.Sprintf("%s%s:%s", cooldownKeyPrefix, input.AccountID, input.Kind)
	value, err := r.client.Get(ctx, cooldownKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCooldownOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get cooldown: %w", err)
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cooldown expiry: %w", err)
	}

	return &GetCooldownOutput{
		ExpiresAt: expiresAt,
		Found:     true,
	}, nil
}

// SetCooldown records a reward cooldown expiry for an account. The key expires
// on its own once the cooldown has passed.
func (r *redisRepository) SetCooldown(ctx context.Context, input *SetCooldownInput) error {
	if input == nil || input.AccountID == "" || input.Kind == "" {
		return errors.New("input, account ID and kind cannot be empty")
	}

	ttl := time.Until(input.ExpiresAt)
	if ttl <= 0 {
		return errors.New("cooldown expiry must be in the future")
	}

	cooldownKey := fmt.Sprintf("%s%s:%s", cooldownKeyPrefix, input.AccountID, input.Kind)
	value := input.ExpiresAt.UTC().Format(time.RFC3339Nano)

	if err := r.client.Set(ctx, cooldownKey, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}

	return nil
}
