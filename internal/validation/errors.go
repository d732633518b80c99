package validation

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrMissingRequiredField = errors.New("required field is empty")
	ErrInvalidPasscode      = errors.New("passcode must be exactly 4 digits")
	ErrInvalidDate          = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidType          = errors.New("transaction type must be deposit or withdrawal")
)
