package wallet

// WalletError is a custom error type for wallet-related errors
type WalletError string

// Error implements the error interface
func (e WalletError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount     WalletError = "amount must be greater than zero"
	ErrInsufficientFunds WalletError = "insufficient wallet balance"
	ErrInsufficientBank  WalletError = "insufficient bank balance"
	ErrSelfTransfer      WalletError = "cannot transfer to yourself"
	ErrUnknownReward     WalletError = "unknown reward kind"
	ErrNilConfig         WalletError = "config cannot be nil"
	ErrNilRepository     WalletError = "account repository cannot be nil"
	ErrNilClock          WalletError = "clock cannot be nil"
	ErrNilRandSource     WalletError = "random source cannot be nil"
)
