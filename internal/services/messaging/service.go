package messaging

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
)

// MessagingError is a custom error type for messaging-related errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      MessagingError = "config cannot be nil"
	ErrNilRandSource  MessagingError = "random source cannot be nil"
	ErrUnknownReward  MessagingError = "unknown reward kind"
	ErrUnknownOutcome MessagingError = "unknown game"
)

var begLines = []string{
	"A stranger liked your determination and handed you %s.",
	"Someone heard your story and slipped you %s.",
	"A passerby wished you good luck and gave you %s.",
	"Someone told you to pass it on one day and gave you %s.",
	"A kind soul was impressed by your perseverance. %s richer.",
	"You got %s and a smile. Mostly the smile.",
}

var searchLines = []string{
	"You searched under the couch and found %s.",
	"You dug through the park and found a hidden stash of %s.",
	"You checked an old wallet in the alley. %s inside.",
	"You found %s in a forgotten book at the old bookstore.",
	"An abandoned locker at the gym held %s.",
	"You found %s in a sunken boat at the marina.",
}

var crimeWinLines = []string{
	"The heist went off without a hitch. You pocketed %s.",
	"Nobody saw a thing. %s richer.",
	"Your accomplices came through and your cut is %s.",
	"Clean getaway. %s in the bag.",
}

var crimeBustLines = []string{
	"You got caught and paid %s in legal fees.",
	"The cops were waiting. They confiscated %s.",
	"Your accomplices sold you out and it cost you %s.",
	"The heist was a flop and you owe %s in damages.",
}

var plainClaimLines = []string{
	"Claimed %s. See you next time.",
	"%s, straight into your wallet.",
	"Cha-ching. %s claimed.",
}

var winLines = []string{
	"The house weeps. %s paid out.",
	"Winner winner. %s is yours.",
	"Lady luck smiles on you today. %s!",
	"Cash it in while it lasts. %s.",
}

var lossLines = []string{
	"The house always wins. Eventually.",
	"Better luck next spin.",
	"That one stung. Walk it off.",
	"Your coins send their regards.",
}

// service implements the Service interface
type service struct {
	rand rng.Source
}

// New creates a new messaging service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Rand == nil {
		return nil, ErrNilRandSource
	}

	return &service{
		rand: cfg.Rand,
	}, nil
}

// GetRewardMessage returns a flavor line for a reward claim
func (s *service) GetRewardMessage(ctx context.Context, input *GetRewardMessageInput) (*GetRewardMessageOutput, error) {
	var lines []string

	switch input.Kind {
	case models.RewardBeg:
		lines = begLines
	case models.RewardSearch:
		lines = searchLines
	case models.RewardCrime:
		if input.Amount < 0 {
			lines = crimeBustLines
		} else {
			lines = crimeWinLines
		}
	case models.RewardDaily, models.RewardWeekly, models.RewardMonthly:
		lines = plainClaimLines
	default:
		return nil, ErrUnknownReward
	}

	amount := input.Amount
	if amount < 0 {
		amount = -amount
	}

	return &GetRewardMessageOutput{
		Message: fmt.Sprintf(s.pick(lines), coins(amount)),
	}, nil
}

// GetOutcomeMessage returns a flavor line for a game result
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input.Game == "" {
		return nil, ErrUnknownOutcome
	}

	if !input.Won {
		return &GetOutcomeMessageOutput{Message: s.pick(lossLines)}, nil
	}

	line := s.pick(winLines)
	return &GetOutcomeMessageOutput{
		Message: fmt.Sprintf(line, coins(input.Payout)),
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.rand.Intn(len(lines))]
}

func coins(amount float64) string {
	out := strconv.FormatFloat(amount, 'f', 2, 64)
	out = strings.TrimSuffix(out, ".00")
	return out + " coins"
}
