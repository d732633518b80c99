// Package ledger owns the in-memory transaction sequence and its balance.
//
// Every mutation validates first and then applies, so a rejected Add, Edit or
// Delete leaves the ledger exactly as it was. Persisting the result is the
// caller's job; see Document.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/store"
	"github.com/shopspring/decimal"
)

// Gate confirms a passcode before destructive operations.
type Gate interface {
	Verify(code string) error
}

// Source is the part of the store the ledger loads from.
type Source interface {
	LoadLedger() (*store.LedgerDocument, error)
}

type Option func(*Ledger)

// WithClock replaces time.Now when dating new transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

type Ledger struct {
	transactions []model.Transaction
	balance      decimal.Decimal
	nextID       int64
	gate         Gate
	now          func() time.Time
}

// New builds a ledger from txs in storage order. Transactions without an id
// get one, continuing after the highest id present.
func New(txs []model.Transaction, gate Gate, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		transactions: make([]model.Transaction, 0, len(txs)),
		balance:      decimal.Zero,
		nextID:       1,
		gate:         gate,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	for i, tx := range txs {
		if !tx.Type.Valid() {
			return nil, fmt.Errorf("%w #%d: unknown type %q", ErrInvalidTransaction, i+1, tx.Type)
		}
		if !tx.Amount.IsPositive() {
			return nil, fmt.Errorf("%w #%d: amount %s is not positive", ErrInvalidTransaction, i+1, tx.Amount)
		}
		if tx.ID >= l.nextID {
			l.nextID = tx.ID + 1
		}
	}

	seen := make(map[int64]bool, len(txs))
	for _, tx := range txs {
		if tx.ID != 0 && seen[tx.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidTransaction, tx.ID)
		}
		if tx.ID == 0 {
			tx.ID = l.nextID
			l.nextID++
		}
		seen[tx.ID] = true
		l.transactions = append(l.transactions, tx)
		l.balance = l.balance.Add(tx.Signed())
	}

	return l, nil
}

// Load reads the persisted ledger. A missing document yields an empty ledger.
// The stored balance is ignored and recomputed from the transactions.
func Load(src Source, gate Gate, opts ...Option) (*Ledger, error) {
	doc, err := src.LoadLedger()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return New(nil, gate, opts...)
		}
		return nil, err
	}

	l, err := New(doc.Transactions, gate, opts...)
	if err != nil {
		return nil, err
	}
	if doc.NextID > l.nextID {
		l.nextID = doc.NextID
	}
	return l, nil
}

func (l *Ledger) Balance() decimal.Decimal {
	return l.balance
}

func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Transactions returns a copy of the sequence in storage order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Document returns the persisted form of the current state.
func (l *Ledger) Document() *store.LedgerDocument {
	return &store.LedgerDocument{
		Transactions: l.Transactions(),
		Balance:      l.balance,
		NextID:       l.nextID,
	}
}

func (l *Ledger) today() string {
	return l.now().Format(constants.DateFormat)
}

func (l *Ledger) indexOf(id int64) (int, error) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: id %d", ErrAmbiguousOrMissingTransaction, id)
}

func (l *Ledger) Find(id int64) (model.Transaction, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return model.Transaction{}, err
	}
	return l.transactions[i], nil
}
