package round

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/fortunabot/fortuna/internal/catalog"
	"github.com/fortunabot/fortuna/internal/common/clock"
	"github.com/fortunabot/fortuna/internal/common/uuid"
	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// Timing holds the engine's clocks. Tests shrink these to keep rounds fast.
type Timing struct {
	// CountdownSeconds is the length of the lobby countdown
	CountdownSeconds int

	// CountdownInterval is the wall time per countdown second
	CountdownInterval time.Duration

	// CrashTick is the interval between multiplier increments
	CrashTick time.Duration

	// SliderFrames is the number of animation frames before the band lands
	SliderFrames int

	// SliderFrameInterval is the wall time per animation frame
	SliderFrameInterval time.Duration

	// BattleOpenDelay is the pause between case openings
	BattleOpenDelay time.Duration

	// WatchInterval is how often the liveness watcher polls the surface
	WatchInterval time.Duration

	// TowerTimeout closes an idle tower round
	TowerTimeout time.Duration

	// HighLowTimeout closes an unanswered high-low round
	HighLowTimeout time.Duration
}

// DefaultTiming returns the production timing values
func DefaultTiming() *Timing {
	return &Timing{
		CountdownSeconds:    30,
		CountdownInterval:   time.Second,
		CrashTick:           100 * time.Millisecond,
		SliderFrames:        20,
		SliderFrameInterval: 500 * time.Millisecond,
		BattleOpenDelay:     time.Second,
		WatchInterval:       5 * time.Second,
		TowerTimeout:        60 * time.Second,
		HighLowTimeout:      30 * time.Second,
	}
}

const (
	// maxParticipants caps the lobby of multiplayer rounds
	maxParticipants = 10

	// maxBattleCases caps the total case quantity per battle
	maxBattleCases = 10

	// crashMultiplierStep is the per-tick multiplier increment
	crashMultiplierStep = 0.01

	// towerLanes is the ladder width; towerSafePerLevel lanes survive
	towerLanes        = 3
	towerSafePerLevel = 2
	towerLevels       = 10

	// highLowJackpotProfit is the profit multiple for an exact match
	highLowJackpotProfit = 9
)

// towerMultipliers maps levels cleared (1-indexed) to cash-out multipliers
var towerMultipliers = []float64{1.2, 1.5, 1.8, 2.1, 2.5, 3, 3.5, 4, 5, 6}

// sliderBands lists the bands in draw order with their weights and payout
// multipliers. Weights are per mille to stay integral.
var (
	sliderBandOrder   = []models.Band{models.BandBronze, models.BandSilver, models.BandGold}
	sliderBandWeights = []int{45, 45, 10}
	sliderStripWidth  = 9
	sliderMultipliers = map[models.Band]float64{
		models.BandBronze: 2,
		models.BandSilver: 2,
		models.BandGold:   14,
	}
)

// Config holds the dependencies for the round service
type Config struct {
	WalletService wallet.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Rand          rng.Source
	Catalog       *catalog.Catalog
	Logger        zerolog.Logger

	// Timing overrides the default intervals when set
	Timing *Timing
}

// ActiveRoundInput identifies a channel and game kind
type ActiveRoundInput struct {
	ChannelID string
	Kind      models.Kind
}

// ActiveRoundOutput contains the live round's ID and phase
type ActiveRoundOutput struct {
	RoundID string
	Phase   models.Phase
}

// StartCrashInput contains parameters for opening a crash lobby
type StartCrashInput struct {
	ChannelID   string
	HostID      string
	HostName    string
	Bet         string
	AutoCashout float64
	Surface     Surface
}

// StartCrashOutput contains the new round's ID
type StartCrashOutput struct {
	RoundID string
	Amount  float64
}

// JoinCrashInput contains parameters for joining a crash lobby
type JoinCrashInput struct {
	RoundID     string
	PlayerID    string
	PlayerName  string
	Bet         string
	AutoCashout float64
}

// JoinCrashOutput contains the resolved stake
type JoinCrashOutput struct {
	Amount float64
}

// CashOutInput contains parameters for cashing out of a live crash round
type CashOutInput struct {
	RoundID  string
	PlayerID string
}

// CashOutOutput contains the settled multiplier and payout
type CashOutOutput struct {
	Multiplier float64
	Payout     float64
}

// StartSliderInput contains parameters for opening a slider lobby
type StartSliderInput struct {
	ChannelID string
	HostID    string
	HostName  string

	// Bets maps bands to bet expressions
	Bets    map[models.Band]string
	Surface Surface
}

// StartSliderOutput contains the new round's ID
type StartSliderOutput struct {
	RoundID string
	Amount  float64
}

// JoinSliderInput contains parameters for joining a slider lobby
type JoinSliderInput struct {
	RoundID    string
	PlayerID   string
	PlayerName string
	Bets       map[models.Band]string
}

// JoinSliderOutput contains the resolved total stake
type JoinSliderOutput struct {
	Amount float64
}

// StartTowerInput contains parameters for starting a tower climb
type StartTowerInput struct {
	ChannelID  string
	PlayerID   string
	PlayerName string
	Bet        string
	Surface    Surface
}

// StartTowerOutput contains the new round's ID and resolved stake
type StartTowerOutput struct {
	RoundID string
	Amount  float64
}

// TowerMoveInput contains parameters for picking a lane
type TowerMoveInput struct {
	RoundID  string
	PlayerID string
	Lane     int
}

// TowerMoveOutput contains the move result. Settled is true when the move
// ended the round, by falling or by clearing the top level.
type TowerMoveOutput struct {
	Safe    bool
	Level   int
	Settled bool
	Payout  float64
}

// TowerCashOutInput contains parameters for leaving the tower early
type TowerCashOutInput struct {
	RoundID  string
	PlayerID string
}

// TowerCashOutOutput contains the payout for the levels cleared
type TowerCashOutOutput struct {
	Level  int
	Payout float64
}

// StartHighLowInput contains parameters for starting a high-low round
type StartHighLowInput struct {
	ChannelID  string
	PlayerID   string
	PlayerName string
	Bet        string
	Surface    Surface
}

// StartHighLowOutput contains the round ID and the first drawn number
type StartHighLowOutput struct {
	RoundID string
	Amount  float64
	First   int
}

// GuessInput contains the player's high-low call
type GuessInput struct {
	RoundID  string
	PlayerID string
	Guess    models.Guess
}

// GuessOutput contains the resolved numbers and payout
type GuessOutput struct {
	First  int
	Second int
	Won    bool
	Payout float64
}

// StartBattleInput contains parameters for opening a case battle lobby
type StartBattleInput struct {
	ChannelID string
	HostID    string
	HostName  string

	// Cases maps catalog keys to quantities
	Cases map[string]int

	// BotBattle fills the opposing team with bots and closes joins
	BotBattle bool

	// TeamSize is the per-team size for bot battles (1 to 4)
	TeamSize int

	Surface Surface
}

// StartBattleOutput contains the round ID and pot
type StartBattleOutput struct {
	RoundID string
	Pot     float64
}

// JoinBattleInput contains parameters for joining a battle lobby
type JoinBattleInput struct {
	RoundID    string
	PlayerID   string
	PlayerName string
}

// JoinBattleOutput contains the team the player landed on
type JoinBattleOutput struct {
	Team int
}

// BeginBattleInput starts the battle; host only
type BeginBattleInput struct {
	RoundID  string
	PlayerID string
}

// BeginBattleOutput is empty; results arrive through the surface
type BeginBattleOutput struct{}

// CancelBattleInput cancels a lobby; host only
type CancelBattleInput struct {
	RoundID  string
	PlayerID string
}

// CancelBattleOutput is empty
type CancelBattleOutput struct{}
