package ledger

import (
	"errors"

	"github.com/hance08/statement/internal/validation"
)

var (
	ErrInvalidAmount                 = validation.ErrInvalidAmount
	ErrMissingRequiredField          = validation.ErrMissingRequiredField
	ErrInsufficientBalance           = errors.New("insufficient balance")
	ErrAuthenticationFailed          = errors.New("incorrect passcode")
	ErrAmbiguousOrMissingTransaction = errors.New("transaction not found or not unique")
	ErrInvalidTransaction            = errors.New("invalid stored transaction")
)
