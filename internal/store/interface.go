package store

type Repository interface {
	// Ledger document
	LoadLedger() (*LedgerDocument, error)
	SaveLedger(doc *LedgerDocument) error

	// Passcode document
	LoadPasscode() (string, error)
	SavePasscode(code string) error

	Driver() string
	Location() string
	Close() error
}

// backend is a key/value document store. get returns ErrNotFound for
// documents that were never written. put replaces the whole document.
type backend interface {
	get(name string) ([]byte, error)
	put(name string, body []byte) error
	close() error
}
