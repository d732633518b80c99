package store

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrCorruptDocument = errors.New("stored document is not valid")
)
