package arcade

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/fortunabot/fortuna/internal/services/arcade Service

import "context"

// Service runs the single-step wager games. Each call resolves the bet,
// debits it, plays out instantly and credits any return before it reports.
type Service interface {
	// Slots spins three reels
	Slots(ctx context.Context, input *SlotsInput) (*SlotsOutput, error)

	// Coinflip doubles or loses the stake on a called coin
	Coinflip(ctx context.Context, input *CoinflipInput) (*CoinflipOutput, error)

	// Gamble rolls a d100 against the house
	Gamble(ctx context.Context, input *GambleInput) (*GambleOutput, error)
}
