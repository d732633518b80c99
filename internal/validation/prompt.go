package validation

import "fmt"

// The functions below have the func(string) error shape expected by huh inputs.

func AmountInput(s string) error {
	_, err := ValidateAmount(s)
	return err
}

func PasscodeInput(s string) error {
	return ValidatePasscode(s)
}

func RequiredInput(field string) func(string) error {
	return func(s string) error {
		if err := ValidateRequiredFields(s); err != nil {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// OptionalDateInput accepts an empty string or a well-formed date.
func OptionalDateInput(s string) error {
	if s == "" {
		return nil
	}
	return ValidateDate(s)
}
