package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/model"
)

type Store struct {
	backend  backend
	driver   string
	location string
}

// NewStore opens the document store for driver at path. migrationsFS is only
// used by the sqlite driver.
func NewStore(driver, path string, migrationsFS fs.FS) (*Store, error) {
	var (
		b   backend
		err error
	)

	switch driver {
	case constants.DriverFile, "":
		driver = constants.DriverFile
		b, err = newFileBackend(path)
	case constants.DriverSQLite:
		b, err = newSQLiteBackend(path, migrationsFS)
	case constants.DriverBolt:
		b, err = newBoltBackend(path)
	default:
		return nil, fmt.Errorf("%w: %q (must be file, sqlite or bolt)", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	return &Store{backend: b, driver: driver, location: path}, nil
}

func (s *Store) Driver() string   { return s.driver }
func (s *Store) Location() string { return s.location }

func (s *Store) Close() error {
	return s.backend.close()
}

func (s *Store) LoadLedger() (*LedgerDocument, error) {
	doc := &LedgerDocument{}
	if err := s.read(constants.DocTransactions, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) SaveLedger(doc *LedgerDocument) error {
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}
	return s.write(constants.DocTransactions, doc)
}

// LoadPasscode returns ErrNotFound when no passcode has been set up yet.
func (s *Store) LoadPasscode() (string, error) {
	doc := &PasscodeDocument{}
	if err := s.read(constants.DocPasscode, doc); err != nil {
		return "", err
	}
	if doc.Passcode == "" {
		return "", ErrNotFound
	}
	return doc.Passcode, nil
}

func (s *Store) SavePasscode(code string) error {
	return s.write(constants.DocPasscode, &PasscodeDocument{Passcode: code})
}

func (s *Store) read(name string, v any) error {
	body, err := s.backend.get(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrNotFound
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptDocument, name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	body, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := s.backend.put(name, body); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
