package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
)

var maxAmount = decimal.RequireFromString(constants.MaxAmount)

// ValidateAmount parses text as a decimal amount greater than zero and at most
// constants.MaxAmount.
func ValidateAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if amount.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q is above the maximum of %s", ErrInvalidAmount, text, constants.MaxAmount)
	}
	return amount, nil
}

// ValidateRequiredFields fails if any field is blank after trimming whitespace.
func ValidateRequiredFields(fields ...string) error {
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return ErrMissingRequiredField
		}
	}
	return nil
}

// ValidatePasscode succeeds iff code is exactly 4 decimal digits.
func ValidatePasscode(code string) error {
	if len(code) != constants.PasscodeLength {
		return ErrInvalidPasscode
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return ErrInvalidPasscode
		}
	}
	return nil
}

func ValidateDate(text string) error {
	if _, err := time.Parse(constants.DateFormat, text); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return nil
}

// ParseTxType accepts "deposit"/"withdrawal" (or "d"/"w") in any case.
func ParseTxType(text string) (model.TxType, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "deposit", "d":
		return model.TypeDeposit, nil
	case "withdrawal", "withdraw", "w":
		return model.TypeWithdrawal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, text)
	}
}
