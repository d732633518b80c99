package service

import (
	"errors"
	"fmt"

	"github.com/hance08/statement/internal/ledger"
	"github.com/hance08/statement/internal/store"
	"github.com/hance08/statement/internal/validation"
	"github.com/sirupsen/logrus"
)

type UnlockStatus int

const (
	StatusOK UnlockStatus = iota
	StatusNeedsSetup
)

func (s UnlockStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNeedsSetup:
		return "needs_setup"
	default:
		return fmt.Sprintf("UnlockStatus(%d)", int(s))
	}
}

// PasscodeService guards the ledger with a single 4-digit code stored next to
// it. It implements ledger.Gate.
type PasscodeService struct {
	repo store.Repository
	log  logrus.FieldLogger
}

func NewPasscodeService(repo store.Repository, log logrus.FieldLogger) *PasscodeService {
	return &PasscodeService{repo: repo, log: log}
}

func (ps *PasscodeService) stored() (string, bool, error) {
	code, err := ps.repo.LoadPasscode()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load passcode: %w", err)
	}
	return code, true, nil
}

// IsSet reports whether a passcode has been set up.
func (ps *PasscodeService) IsSet() (bool, error) {
	_, ok, err := ps.stored()
	return ok, err
}

// InitializeOrUnlock returns StatusNeedsSetup when no passcode exists yet.
// Otherwise entered must match the stored code.
func (ps *PasscodeService) InitializeOrUnlock(entered *string) (UnlockStatus, error) {
	code, ok, err := ps.stored()
	if err != nil {
		return StatusOK, err
	}
	if !ok {
		return StatusNeedsSetup, nil
	}

	if entered == nil || *entered != code {
		ps.log.Warn("Passcode.Unlock.Rejected")
		return StatusOK, ledger.ErrAuthenticationFailed
	}
	return StatusOK, nil
}

// Setup stores the first passcode. It refuses to replace an existing one;
// use Change for that.
func (ps *PasscodeService) Setup(code string) error {
	if err := validation.ValidatePasscode(code); err != nil {
		return err
	}

	_, ok, err := ps.stored()
	if err != nil {
		return err
	}
	if ok {
		return ErrPasscodeAlreadySet
	}

	if err := ps.repo.SavePasscode(code); err != nil {
		return persistErr(err)
	}
	ps.log.Info("Passcode.Setup.Complete")
	return nil
}

// Verify fails closed: a missing passcode rejects every code.
func (ps *PasscodeService) Verify(code string) error {
	stored, ok, err := ps.stored()
	if err != nil {
		return err
	}
	if !ok || code != stored {
		ps.log.Warn("Passcode.Verify.Rejected")
		return ledger.ErrAuthenticationFailed
	}
	return nil
}

func (ps *PasscodeService) Change(oldCode, newCode string) error {
	if err := ps.Verify(oldCode); err != nil {
		return err
	}
	if err := validation.ValidatePasscode(newCode); err != nil {
		return err
	}

	if err := ps.repo.SavePasscode(newCode); err != nil {
		return persistErr(err)
	}
	ps.log.Info("Passcode.Change.Complete")
	return nil
}
