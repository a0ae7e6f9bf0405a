package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundNotFound     RoundError = "round not found"
	ErrRoundClosed       RoundError = "round is closed"
	ErrAlreadyStarted    RoundError = "round has already started"
	ErrAlreadyJoined     RoundError = "player already joined this round"
	ErrRoundFull         RoundError = "round is at maximum capacity"
	ErrNotParticipant    RoundError = "player is not in this round"
	ErrNotHost           RoundError = "only the host can do that"
	ErrAlreadySettled    RoundError = "stake is already settled"
	ErrRoundInProgress   RoundError = "a round is already running in this channel"
	ErrNoCasesSelected   RoundError = "no cases selected"
	ErrUnknownCase       RoundError = "unknown case"
	ErrTooManyCases      RoundError = "at most 10 cases may be selected"
	ErrHumansJoined      RoundError = "bot battles cannot be joined"
	ErrNotEnoughPlayers  RoundError = "not enough players to start"
	ErrInvalidLane       RoundError = "lane must be 0, 1 or 2"
	ErrInsufficientFunds RoundError = "insufficient wallet balance"
	ErrNilConfig         RoundError = "config cannot be nil"
	ErrNilWalletService  RoundError = "wallet service cannot be nil"
	ErrNilClock          RoundError = "clock cannot be nil"
	ErrNilUUIDGenerator  RoundError = "UUID generator cannot be nil"
	ErrNilRandSource     RoundError = "random source cannot be nil"
	ErrNilCatalog        RoundError = "case catalog cannot be nil"
	ErrNilSurface        RoundError = "surface cannot be nil"
)
