package constants

const (
	// Type filters
	FilterAll        = "all"
	FilterDeposit    = "deposit"
	FilterWithdrawal = "withdrawal"

	// Date Layout
	DateFormat = "2006-01-02"

	PasscodeLength = 4

	// MaxAmount is the largest amount a single transaction may carry.
	MaxAmount = "1000000000000"
)
