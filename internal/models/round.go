package models

import "time"

// Kind identifies which mini-game a round is running
type Kind string

const (
	KindCrash   Kind = "crash"
	KindSlider  Kind = "slider"
	KindTower   Kind = "tower"
	KindHighLow Kind = "highlow"
	KindBattle  Kind = "battle"
)

// Phase is the lifecycle state of a round
type Phase string

const (
	// PhaseLobby accepts joins
	PhaseLobby Phase = "lobby"

	// PhaseCountdown is the cosmetic pre-game timer; no balance mutation
	PhaseCountdown Phase = "countdown"

	// PhaseActive runs the kind-specific simulation
	PhaseActive Phase = "active"

	// PhaseSettlement applies at most one credit/debit per stake
	PhaseSettlement Phase = "settlement"

	// PhaseClosed is terminal
	PhaseClosed Phase = "closed"
)

// Band is a slider outcome band
type Band string

const (
	BandBronze Band = "bronze"
	BandSilver Band = "silver"
	BandGold   Band = "gold"
)

// Guess is a high-low call
type Guess string

const (
	GuessHigher  Guess = "higher"
	GuessLower   Guess = "lower"
	GuessJackpot Guess = "jackpot"
)

// RoundInfo is the engine-owned identity of a round. The kind-specific shared
// state lives on the engine's round types; this is what renderers and
// repositories see.
type RoundInfo struct {
	ID        string
	Kind      Kind
	Phase     Phase
	ChannelID string
	CreatedAt time.Time
}

// Stake is one participant's wager within a round. The Settled flag is the
// at-most-once settlement guard: it only ever transitions false -> true, under
// the owning round's lock.
type Stake struct {
	// PlayerID is the participant identity; empty for battle bots
	PlayerID string

	// PlayerName is the display name at join time
	PlayerName string

	// Amount is the total wagered, already debited from the wallet
	Amount float64

	// Bands holds the per-band split for slider stakes
	Bands map[Band]float64

	// AutoCashout is the crash auto-cashout threshold; 0 means none
	AutoCashout float64

	// Settled guards against double payout
	Settled bool

	// Result is the amount credited at settlement (0 for a loss)
	Result float64

	// CashoutAt is the multiplier a crash stake settled at
	CashoutAt float64
}

// Settle marks the stake settled with the given credit. Returns false if the
// stake was already settled; callers must not touch the ledger in that case.
func (s *Stake) Settle(result float64) bool {
	if s.Settled {
		return false
	}
	s.Settled = true
	s.Result = result
	return true
}

// IsBot reports whether the stake belongs to a generated battle bot, which is
// excluded from all ledger mutation.
func (s *Stake) IsBot() bool {
	return s.PlayerID == ""
}
