package messaging

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/fortunabot/fortuna/internal/services/messaging Service

import "context"

// Service picks the flavor lines shown alongside reward claims and game
// results, so the same outcome does not read identically every time.
type Service interface {
	// GetRewardMessage returns a flavor line for a reward claim
	GetRewardMessage(ctx context.Context, input *GetRewardMessageInput) (*GetRewardMessageOutput, error)

	// GetOutcomeMessage returns a flavor line for a game result
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)
}
