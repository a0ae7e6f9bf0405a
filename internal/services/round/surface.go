package round

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
)

// Surface is the display a round renders into. The presentation layer creates
// it before starting a round; the engine only pushes state snapshots at it and
// asks whether it is still reachable. The engine never inspects its content.
type Surface interface {
	// Update pushes the current round snapshot to the display
	Update(ctx context.Context, view *View) error

	// Exists reports whether the display is still reachable. The liveness
	// watcher force-closes the round when it is not.
	Exists(ctx context.Context) bool
}

// CaseOpen records a single case opening during a battle
type CaseOpen struct {
	PlayerName string
	Team       int
	ItemName   string
	ItemValue  float64
	Rarity     models.Rarity
}

// View is an immutable snapshot of round state handed to the Surface. Only
// the fields relevant to the round's kind are populated.
type View struct {
	ID        string
	Kind      models.Kind
	Phase     models.Phase
	ChannelID string

	// Countdown is the seconds remaining in the countdown phase
	Countdown int

	// Stakes are copies, ordered by join time
	Stakes []models.Stake

	// Crash
	Multiplier float64
	CrashPoint float64
	Crashed    bool

	// Slider
	WinningBand models.Band
	Strip       []models.Band

	// Tower
	Level       int
	SafeTiles   [][]int
	Multipliers []float64
	Fell        bool
	FellLane    int

	// HighLow
	First  int
	Second int
	Guess  models.Guess
	Won    bool

	// Battle
	Teams        map[int][]string
	TeamTotals   map[int]float64
	PlayerTotals map[string]float64
	Pot          float64
	WinningTeam  int
	LastOpen     *CaseOpen

	// ForceClosed is set when the liveness watcher reimbursed the round
	ForceClosed bool
}
