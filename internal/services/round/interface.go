package round

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/fortunabot/fortuna/internal/services/round Service

import "context"

// Service runs the timed multiplayer games. Every round moves through the
// same phases: lobby, countdown, active, settlement, closed. Stakes are
// debited when taken and each one settles at most once.
type Service interface {
	// ActiveRound looks up the live round of a kind in a channel
	ActiveRound(ctx context.Context, input *ActiveRoundInput) (*ActiveRoundOutput, error)

	// StartCrash opens a crash lobby and takes the host's stake
	StartCrash(ctx context.Context, input *StartCrashInput) (*StartCrashOutput, error)

	// JoinCrash adds a player to a crash lobby
	JoinCrash(ctx context.Context, input *JoinCrashInput) (*JoinCrashOutput, error)

	// CashOut settles a crash stake at the current multiplier
	CashOut(ctx context.Context, input *CashOutInput) (*CashOutOutput, error)

	// StartSlider opens a slider lobby and takes the host's stake
	StartSlider(ctx context.Context, input *StartSliderInput) (*StartSliderOutput, error)

	// JoinSlider adds a player to a slider lobby
	JoinSlider(ctx context.Context, input *JoinSliderInput) (*JoinSliderOutput, error)

	// StartTower starts a single-player tower climb
	StartTower(ctx context.Context, input *StartTowerInput) (*StartTowerOutput, error)

	// TowerMove picks a lane on the current level
	TowerMove(ctx context.Context, input *TowerMoveInput) (*TowerMoveOutput, error)

	// TowerCashOut settles the climb at the current level's multiplier
	TowerCashOut(ctx context.Context, input *TowerCashOutInput) (*TowerCashOutOutput, error)

	// StartHighLow starts a single-player high-low round
	StartHighLow(ctx context.Context, input *StartHighLowInput) (*StartHighLowOutput, error)

	// Guess resolves a high-low round
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// StartBattle opens a case battle lobby
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// JoinBattle adds a player to the smaller team of a battle lobby
	JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error)

	// BeginBattle collects the stakes and starts opening cases; host only
	BeginBattle(ctx context.Context, input *BeginBattleInput) (*BeginBattleOutput, error)

	// CancelBattle closes a battle lobby before any stakes are taken
	CancelBattle(ctx context.Context, input *CancelBattleInput) (*CancelBattleOutput, error)
}
