package arcade

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// ArcadeError is a custom error type for arcade-related errors
type ArcadeError string

// Error implements the error interface
func (e ArcadeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ArcadeError = "config cannot be nil"
	ErrNilWalletService ArcadeError = "wallet service cannot be nil"
	ErrNilRandSource    ArcadeError = "random source cannot be nil"
	ErrInvalidGuess     ArcadeError = "guess must be heads or tails"
)

// Config holds the dependencies for the arcade service
type Config struct {
	WalletService wallet.Service
	Rand          rng.Source
	Logger        zerolog.Logger
}

type service struct {
	wallet wallet.Service
	rand   rng.Source
	logger zerolog.Logger
}

// New creates a new arcade service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.WalletService == nil {
		return nil, ErrNilWalletService
	}
	if cfg.Rand == nil {
		return nil, ErrNilRandSource
	}

	return &service{
		wallet: cfg.WalletService,
		rand:   cfg.Rand,
		logger: cfg.Logger.With().Str("service", "arcade").Logger(),
	}, nil
}

// Slots spins three reels. Triples pay 10x for diamonds, 5x for bells and 3x
// otherwise; an adjacent pair pays 1.5x.
func (s *service) Slots(ctx context.Context, input *SlotsInput) (*SlotsOutput, error) {
	stake, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.PlayerID,
		Bet:       input.Bet,
	})
	if err != nil {
		return nil, err
	}

	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[s.rand.Intn(len(slotSymbols))]
	}

	var winnings float64
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case "💎":
			winnings = stake.Amount * 10
		case "🔔":
			winnings = stake.Amount * 5
		default:
			winnings = stake.Amount * 3
		}
	case reels[0] == reels[1] || reels[1] == reels[2]:
		winnings = stake.Amount * 1.5
	}
	winnings = rng.Round2(winnings)

	balance := stake.Account.Wallet
	if winnings > 0 {
		out, err := s.wallet.Credit(ctx, &wallet.CreditInput{
			AccountID: input.PlayerID,
			Amount:    winnings,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Account.Wallet
	}

	return &SlotsOutput{
		Reels:    reels,
		Amount:   stake.Amount,
		Winnings: winnings,
		Net:      rng.Round2(winnings - stake.Amount),
		Balance:  balance,
	}, nil
}

// Coinflip pays even money on a correct call
func (s *service) Coinflip(ctx context.Context, input *CoinflipInput) (*CoinflipOutput, error) {
	guess := input.Guess
	if guess == "" {
		guess = CoinHeads
	}
	if guess != CoinHeads && guess != CoinTails {
		return nil, ErrInvalidGuess
	}

	stake, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.PlayerID,
		Bet:       input.Bet,
	})
	if err != nil {
		return nil, err
	}

	outcome := CoinHeads
	if s.rand.Intn(2) == 1 {
		outcome = CoinTails
	}

	won := outcome == guess
	balance := stake.Account.Wallet
	if won {
		out, err := s.wallet.Credit(ctx, &wallet.CreditInput{
			AccountID: input.PlayerID,
			Amount:    rng.Round2(stake.Amount * 2),
		})
		if err != nil {
			return nil, err
		}
		balance = out.Account.Wallet
	}

	return &CoinflipOutput{
		Guess:   guess,
		Outcome: outcome,
		Amount:  stake.Amount,
		Won:     won,
		Balance: balance,
	}, nil
}

// Gamble rolls a d100: under 50 loses the stake, exactly 50 loses half, over
// 50 returns the stake plus roll percent of it
func (s *service) Gamble(ctx context.Context, input *GambleInput) (*GambleOutput, error) {
	stake, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.PlayerID,
		Bet:       input.Bet,
	})
	if err != nil {
		return nil, err
	}

	roll := s.rand.Intn(100) + 1

	var payout float64
	switch {
	case roll < 50:
		payout = 0
	case roll == 50:
		payout = rng.Round2(stake.Amount / 2)
	default:
		payout = rng.Round2(stake.Amount + stake.Amount*float64(roll)/100)
	}

	balance := stake.Account.Wallet
	if payout > 0 {
		out, err := s.wallet.Credit(ctx, &wallet.CreditInput{
			AccountID: input.PlayerID,
			Amount:    payout,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Account.Wallet
	}

	return &GambleOutput{
		Roll:    roll,
		Amount:  stake.Amount,
		Net:     rng.Round2(payout - stake.Amount),
		Balance: balance,
	}, nil
}
