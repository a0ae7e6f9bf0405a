package wallet

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortunabot/fortuna/internal/common/clock"
	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/pkg/lock"
	"github.com/fortunabot/fortuna/internal/repositories/account"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/wager"
)

// rewardSpec defines a cooldown-gated uniform payout range
type rewardSpec struct {
	cooldown time.Duration
	min      float64
	max      float64
}

var rewardSpecs = map[models.RewardKind]rewardSpec{
	models.RewardDaily:   {cooldown: 24 * time.Hour, min: 100, max: 500},
	models.RewardWeekly:  {cooldown: 7 * 24 * time.Hour, min: 500, max: 2000},
	models.RewardMonthly: {cooldown: 30 * 24 * time.Hour, min: 2000, max: 5000},
	models.RewardBeg:     {cooldown: 30 * time.Second, min: 10, max: 500},
	models.RewardSearch:  {cooldown: time.Minute, min: 10, max: 500},
}

const crimeCooldown = time.Minute

// crimeFractions are the wallet fractions a crime outcome applies; negative
// entries are losses.
var crimeFractions = []float64{
	0.15, 0.2, 0.25, 0.3, 0.35, 0.4,
	-0.1, -0.15, -0.2, -0.25, -0.3, -0.35, -0.4, -0.5,
}

// crimeMinGain keeps a successful crime worthwhile on an empty wallet
const crimeMinGain = 50.0

// Config holds the dependencies for the wallet service
type Config struct {
	AccountRepo account.Repository
	Clock       clock.Clock
	Rand        rng.Source
	Logger      zerolog.Logger
}

type service struct {
	repo   account.Repository
	clock  clock.Clock
	rand   rng.Source
	locks  *lock.KeyedMutex
	logger zerolog.Logger
}

// New creates a new wallet service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AccountRepo == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Rand == nil {
		return nil, ErrNilRandSource
	}

	return &service{
		repo:   cfg.AccountRepo,
		clock:  cfg.Clock,
		rand:   cfg.Rand,
		locks:  lock.New(),
		logger: cfg.Logger.With().Str("service", "wallet").Logger(),
	}, nil
}

// GetBalance retrieves an account's wallet and bank balances
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	acct, err := s.repo.GetAccount(ctx, &account.GetAccountInput{
		AccountID: input.AccountID,
	})
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Account: acct}, nil
}

// Credit adds to an account's wallet
func (s *service) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var acct *models.Account
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		acct.Wallet = rng.Round2(acct.Wallet + input.Amount)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("account", input.AccountID).
		Float64("amount", input.Amount).
		Float64("wallet", acct.Wallet).
		Msg("credited wallet")

	return &CreditOutput{Account: acct}, nil
}

// Debit removes from an account's wallet. The balance check and the write run
// under the same per-account lock.
func (s *service) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var acct *models.Account
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		if acct.Wallet < input.Amount {
			return ErrInsufficientFunds
		}

		acct.Wallet = rng.Round2(acct.Wallet - input.Amount)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("account", input.AccountID).
		Float64("amount", input.Amount).
		Float64("wallet", acct.Wallet).
		Msg("debited wallet")

	return &DebitOutput{Account: acct}, nil
}

// Deposit moves wallet funds into the bank
func (s *service) Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	var (
		acct   *models.Account
		amount float64
	)
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		amount, err = wager.Resolve(input.Amount, acct.Wallet)
		if err != nil {
			if err == wager.ErrInsufficientFunds {
				return ErrInsufficientFunds
			}
			return err
		}

		acct.Wallet = rng.Round2(acct.Wallet - amount)
		acct.Bank = rng.Round2(acct.Bank + amount)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	return &DepositOutput{Amount: amount, Account: acct}, nil
}

// Withdraw moves bank funds into the wallet
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	var (
		acct   *models.Account
		amount float64
	)
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		amount, err = wager.Resolve(input.Amount, acct.Bank)
		if err != nil {
			if err == wager.ErrInsufficientFunds {
				return ErrInsufficientBank
			}
			return err
		}

		acct.Bank = rng.Round2(acct.Bank - amount)
		acct.Wallet = rng.Round2(acct.Wallet + amount)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	return &WithdrawOutput{Amount: amount, Account: acct}, nil
}

// Wager resolves a bet expression against the wallet and debits it under the
// account lock
func (s *service) Wager(ctx context.Context, input *WagerInput) (*WagerOutput, error) {
	var (
		acct   *models.Account
		amount float64
	)
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		amount, err = wager.Resolve(input.Bet, acct.Wallet)
		if err != nil {
			if err == wager.ErrInsufficientFunds {
				return ErrInsufficientFunds
			}
			return err
		}

		acct.Wallet = rng.Round2(acct.Wallet - amount)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("account", input.AccountID).
		Float64("amount", amount).
		Msg("wager taken")

	return &WagerOutput{Amount: amount, Account: acct}, nil
}

// WagerSplit resolves split-band bet expressions and debits the total under
// the account lock
func (s *service) WagerSplit(ctx context.Context, input *WagerSplitInput) (*WagerSplitOutput, error) {
	var (
		acct    *models.Account
		amounts map[models.Band]float64
		total   float64
	)
	err := s.locks.WithLock(input.AccountID, func() error {
		var err error
		acct, err = s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		amounts, total, err = wager.ResolveSplit(input.Bets, acct.Wallet)
		if err != nil {
			if err == wager.ErrInsufficientFunds {
				return ErrInsufficientFunds
			}
			return err
		}

		acct.Wallet = rng.Round2(acct.Wallet - total)

		return s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct})
	})
	if err != nil {
		return nil, err
	}

	return &WagerSplitOutput{Amounts: amounts, Total: total, Account: acct}, nil
}

// feeRate returns the transfer fee tier for an amount
func feeRate(amount float64) float64 {
	switch {
	case amount < 1000:
		return 0
	case amount < 5000:
		return 0.05
	case amount < 10000:
		return 0.10
	default:
		return 0.15
	}
}

// Pay transfers between accounts. Both account locks are taken in a fixed
// order so two opposing transfers cannot deadlock.
func (s *service) Pay(ctx context.Context, input *PayInput) (*PayOutput, error) {
	if input.FromID == input.ToID {
		return nil, ErrSelfTransfer
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	first, second := input.FromID, input.ToID
	if second < first {
		first, second = second, first
	}
	s.locks.Lock(first)
	defer s.locks.Unlock(first)
	s.locks.Lock(second)
	defer s.locks.Unlock(second)

	from, err := s.repo.GetAccount(ctx, &account.GetAccountInput{
		AccountID: input.FromID,
	})
	if err != nil {
		return nil, err
	}

	amount := rng.Round2(input.Amount)
	if from.Wallet < amount {
		return nil, ErrInsufficientFunds
	}

	to, err := s.repo.GetAccount(ctx, &account.GetAccountInput{
		AccountID: input.ToID,
	})
	if err != nil {
		return nil, err
	}

	fee := rng.Round2(amount * feeRate(amount))
	received := rng.Round2(amount - fee)

	from.Wallet = rng.Round2(from.Wallet - amount)
	to.Wallet = rng.Round2(to.Wallet + received)

	if err := s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: from}); err != nil {
		return nil, err
	}
	if err := s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: to}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("from", input.FromID).
		Str("to", input.ToID).
		Float64("amount", amount).
		Float64("fee", fee).
		Msg("transfer complete")

	return &PayOutput{
		Amount:   amount,
		Fee:      fee,
		Received: received,
		From:     from,
	}, nil
}

// ClaimReward grants a cooldown-gated reward. A claim still on cooldown is not
// an error; the output carries the retry time instead.
func (s *service) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	spec, ok := rewardSpecs[input.Kind]
	cooldown := spec.cooldown
	if !ok {
		if input.Kind != models.RewardCrime {
			return nil, ErrUnknownReward
		}
		cooldown = crimeCooldown
	}

	// The cooldown read and write stay inside the per-identity lock so two
	// concurrent claims cannot both observe an expired cooldown and credit
	// the reward twice.
	var out *ClaimRewardOutput
	err := s.locks.WithLock(input.AccountID, func() error {
		cd, err := s.repo.GetCooldown(ctx, &account.GetCooldownInput{
			AccountID: input.AccountID,
			Kind:      input.Kind,
		})
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if cd.Found && now.Before(cd.ExpiresAt) {
			out = &ClaimRewardOutput{RetryAt: cd.ExpiresAt}
			return nil
		}

		acct, err := s.repo.GetAccount(ctx, &account.GetAccountInput{
			AccountID: input.AccountID,
		})
		if err != nil {
			return err
		}

		var amount float64
		if input.Kind == models.RewardCrime {
			amount = s.crimeOutcome(acct.Wallet)
		} else {
			amount = rng.Round2(spec.min + s.rand.Float64()*(spec.max-spec.min))
		}

		acct.Wallet = rng.Round2(acct.Wallet + amount)

		if err := s.repo.SaveAccount(ctx, &account.SaveAccountInput{Account: acct}); err != nil {
			return err
		}

		retryAt := now.Add(cooldown)
		if err := s.repo.SetCooldown(ctx, &account.SetCooldownInput{
			AccountID: input.AccountID,
			Kind:      input.Kind,
			ExpiresAt: retryAt,
		}); err != nil {
			return err
		}

		out = &ClaimRewardOutput{
			Claimed: true,
			Amount:  amount,
			Account: acct,
			RetryAt: retryAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Claimed {
		s.logger.Debug().
			Str("account", input.AccountID).
			Str("kind", string(input.Kind)).
			Float64("amount", out.Amount).
			Msg("reward claimed")
	}

	return out, nil
}

// crimeOutcome returns the signed wallet delta for one crime attempt
func (s *service) crimeOutcome(wallet float64) float64 {
	frac := crimeFractions[s.rand.Intn(len(crimeFractions))]

	if frac > 0 {
		if wallet == 0 {
			return crimeMinGain
		}
		return rng.Round2(wallet * frac)
	}

	if wallet == 0 {
		return 0
	}
	return rng.Round2(wallet * frac)
}

// Leaderboard retrieves the top accounts by net worth
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	out, err := s.repo.GetTopAccounts(ctx, &account.GetTopAccountsInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &LeaderboardOutput{Accounts: out.Accounts}, nil
}
