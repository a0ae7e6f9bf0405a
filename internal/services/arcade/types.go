package arcade

// Coin is a coinflip side
type Coin string

const (
	CoinHeads Coin = "heads"
	CoinTails Coin = "tails"
)

// slotSymbols are the reel faces
var slotSymbols = []string{"🍒", "🍋", "🍊", "🍇", "🔔", "💎"}

// SlotsInput contains parameters for one slot machine spin
type SlotsInput struct {
	PlayerID string
	Bet      string
}

// SlotsOutput contains the spun reels and the money moved. Winnings is the
// gross return; Net is Winnings minus the stake.
type SlotsOutput struct {
	Reels    [3]string
	Amount   float64
	Winnings float64
	Net      float64
	Balance  float64
}

// CoinflipInput contains parameters for one coin flip
type CoinflipInput struct {
	PlayerID string
	Bet      string
	Guess    Coin
}

// CoinflipOutput contains the flip result
type CoinflipOutput struct {
	Guess   Coin
	Outcome Coin
	Amount  float64
	Won     bool
	Balance float64
}

// GambleInput contains parameters for one d100 gamble
type GambleInput struct {
	PlayerID string
	Bet      string
}

// GambleOutput contains the roll and the money moved. Net is positive on a
// win, negative on a loss and minus half the stake on an exact 50.
type GambleOutput struct {
	Roll    int
	Amount  float64
	Net     float64
	Balance float64
}
