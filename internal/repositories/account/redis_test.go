package account

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fortunabot/fortuna/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetAccount() {
	acct := &models.Account{
		ID:     "user-1",
		Wallet: 1234.56,
		Bank:   500,
	}

	err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{
		Account: acct,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		AccountID: "user-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("user-1", retrieved.ID)
	s.Equal(1234.56, retrieved.Wallet)
	s.Equal(float64(500), retrieved.Bank)
}

func (s *RedisRepositoryTestSuite) TestGetAccount_MissingReturnsZeroed() {
	retrieved, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		AccountID: "never-seen",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("never-seen", retrieved.ID)
	s.Equal(float64(0), retrieved.Wallet)
	s.Equal(float64(0), retrieved.Bank)
}

func (s *RedisRepositoryTestSuite) TestSaveAccount_ClampsAndRounds() {
	err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{
		Account: &models.Account{
			ID:     "user-2",
			Wallet: -50,
			Bank:   99.999,
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		AccountID: "user-2",
	})
	s.Require().NoError(err)

	s.Equal(float64(0), retrieved.Wallet)
	s.Equal(100.0, retrieved.Bank)
}

func (s *RedisRepositoryTestSuite) TestGetTopAccounts() {
	ctx := context.Background()

	for _, acct := range []*models.Account{
		{ID: "poor", Wallet: 10},
		{ID: "rich", Wallet: 5000, Bank: 5000},
		{ID: "middle", Wallet: 100, Bank: 900},
	} {
		s.Require().NoError(s.repo.SaveAccount(ctx, &SaveAccountInput{Account: acct}))
	}

	out, err := s.repo.GetTopAccounts(ctx, &GetTopAccountsInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Accounts, 2)

	s.Equal("rich", out.Accounts[0].ID)
	s.Equal("middle", out.Accounts[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetTopAccounts_Empty() {
	out, err := s.repo.GetTopAccounts(context.Background(), &GetTopAccountsInput{Limit: 10})
	s.Require().NoError(err)
	s.Empty(out.Accounts)
}

func (s *RedisRepositoryTestSuite) TestCooldownRoundTrip() {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)

	err := s.repo.SetCooldown(ctx, &SetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardDaily,
		ExpiresAt: expiry,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetCooldown(ctx, &GetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardDaily,
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.True(out.ExpiresAt.Equal(expiry))
}

func (s *RedisRepositoryTestSuite) TestGetCooldown_NotSet() {
	out, err := s.repo.GetCooldown(context.Background(), &GetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardWeekly,
	})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestCooldownExpires() {
	ctx := context.Background()

	err := s.repo.SetCooldown(ctx, &SetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardDaily,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)

	// miniredis only advances TTLs when told to
	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.GetCooldown(ctx, &GetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardDaily,
	})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestSetCooldown_PastExpiryRejected() {
	err := s.repo.SetCooldown(context.Background(), &SetCooldownInput{
		AccountID: "user-1",
		Kind:      models.RewardDaily,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	s.Error(err)
}
