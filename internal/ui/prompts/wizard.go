package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/hance08/statement/internal/validation"
)

// PromptPasscode asks for the existing passcode with masked input.
func PromptPasscode(title string) (string, error) {
	var code string

	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		CharLimit(4).
		Value(&code).
		Run()

	return code, err
}

// PromptNewPasscode asks for a new 4-digit passcode twice.
func PromptNewPasscode(title string) (string, error) {
	var code, again string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Exactly 4 digits. It is asked again before deleting transactions.").
				EchoMode(huh.EchoModePassword).
				CharLimit(4).
				Validate(validation.PasscodeInput).
				Value(&code),
			huh.NewInput().
				Title("Repeat the passcode:").
				EchoMode(huh.EchoModePassword).
				CharLimit(4).
				Validate(func(s string) error {
					if s != code {
						return errors.New("passcodes do not match")
					}
					return nil
				}).
				Value(&again),
		),
	).Run()

	return code, err
}
