package cmd

import (
	"errors"
	"fmt"

	"github.com/hance08/statement/internal/ledger"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/pterm/pterm"
)

const maxUnlockAttempts = 3

// unlock runs first-time setup when no passcode exists, otherwise checks
// --passcode or asks for the code up to maxUnlockAttempts times.
func (d *deps) unlock() error {
	svc := d.app.Service.Passcode

	if d.passcode != "" {
		status, err := svc.InitializeOrUnlock(&d.passcode)
		if err != nil {
			return err
		}
		if status == service.StatusNeedsSetup {
			if err := svc.Setup(d.passcode); err != nil {
				return err
			}
			pterm.Success.Println("Passcode saved.")
		}
		d.unlocked = d.passcode
		return nil
	}

	status, err := svc.InitializeOrUnlock(nil)
	if err != nil && !errors.Is(err, ledger.ErrAuthenticationFailed) {
		return err
	}
	if status == service.StatusNeedsSetup {
		return d.firstRun()
	}

	for attempt := 1; attempt <= maxUnlockAttempts; attempt++ {
		code, err := prompts.PromptPasscode("Enter your passcode:")
		if err != nil {
			return err
		}

		_, err = svc.InitializeOrUnlock(&code)
		if err == nil {
			d.unlocked = code
			return nil
		}
		if !errors.Is(err, ledger.ErrAuthenticationFailed) {
			return err
		}
		if left := maxUnlockAttempts - attempt; left > 0 {
			pterm.Warning.Printf("Incorrect passcode, %d attempt(s) left\n", left)
		}
	}

	return fmt.Errorf("%w: too many attempts", ledger.ErrAuthenticationFailed)
}

func (d *deps) firstRun() error {
	pterm.Info.Println("Welcome! Set a 4-digit passcode to protect your statement.")

	code, err := prompts.PromptNewPasscode("New passcode:")
	if err != nil {
		return err
	}
	if err := d.app.Service.Passcode.Setup(code); err != nil {
		return err
	}

	pterm.Success.Println("Passcode saved.")
	d.unlocked = code
	return nil
}

// confirmPasscode asks for the passcode again before a destructive step.
// --passcode answers it without prompting.
func (d *deps) confirmPasscode(title string) (string, error) {
	if d.passcode != "" {
		return d.passcode, nil
	}
	return prompts.PromptPasscode(title)
}
