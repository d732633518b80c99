package service

import (
	"errors"
	"fmt"
)

var (
	ErrPersistenceFailure = errors.New("failed to save changes")
	ErrPasscodeAlreadySet = errors.New("passcode is already set")
	ErrUnknownFormat      = errors.New("unknown export format")
)

// persistErr marks a failed save. The in-memory change it followed is kept.
func persistErr(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
}
