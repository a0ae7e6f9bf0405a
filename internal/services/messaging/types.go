package messaging

import (
	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
)

// Config holds the dependencies for the messaging service
type Config struct {
	Rand rng.Source
}

// GetRewardMessageInput is the input for GetRewardMessage. Amount is the
// signed amount the claim moved; a negative amount means a botched crime.
type GetRewardMessageInput struct {
	Kind   models.RewardKind
	Amount float64
}

// GetRewardMessageOutput is the output for GetRewardMessage
type GetRewardMessageOutput struct {
	Message string
}

// GetOutcomeMessageInput is the input for GetOutcomeMessage
type GetOutcomeMessageInput struct {
	Game   string
	Won    bool
	Payout float64
}

// GetOutcomeMessageOutput is the output for GetOutcomeMessage
type GetOutcomeMessageOutput struct {
	Message string
}
