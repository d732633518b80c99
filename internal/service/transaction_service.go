package service

import (
	"fmt"
	"strings"

	"github.com/hance08/statement/internal/config"
	"github.com/hance08/statement/internal/ledger"
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/query"
	"github.com/hance08/statement/internal/store"
	"github.com/hance08/statement/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	repo   store.Repository
	gate   ledger.Gate
	config *config.Config
	log    logrus.FieldLogger
	opts   []ledger.Option

	ledger *ledger.Ledger
}

func NewTransactionService(repo store.Repository, gate ledger.Gate, cfg *config.Config, log logrus.FieldLogger, opts ...ledger.Option) *TransactionService {
	return &TransactionService{repo: repo, gate: gate, config: cfg, log: log, opts: opts}
}

// load reads the ledger on first use and keeps it for the rest of the process.
func (ts *TransactionService) load() (*ledger.Ledger, error) {
	if ts.ledger != nil {
		return ts.ledger, nil
	}

	l, err := ledger.Load(ts.repo, ts.gate, ts.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	ts.ledger = l
	ts.log.WithFields(logrus.Fields{
		"count":   l.Len(),
		"balance": l.Balance().String(),
		"driver":  ts.repo.Driver(),
	}).Debug("Ledger.Load.Complete")
	return l, nil
}

func (ts *TransactionService) save(l *ledger.Ledger) error {
	if err := ts.repo.SaveLedger(l.Document()); err != nil {
		ts.log.WithError(err).Error("Ledger.Save.Error")
		return persistErr(err)
	}
	return nil
}

func (ts *TransactionService) logTx(msg string, tx model.Transaction) {
	ts.log.WithFields(logrus.Fields{
		"id":     tx.ID,
		"type":   string(tx.Type),
		"amount": tx.Amount.String(),
	}).Info(msg)
}

func entryAccounts(t model.TxType, counterparty string) (from, to string) {
	if t == model.TypeWithdrawal {
		return "", counterparty
	}
	return counterparty, ""
}

// CreateTransaction validates and appends a transaction dated today, then
// saves. On ErrPersistenceFailure the returned transaction is still part of
// the in-memory ledger.
func (ts *TransactionService) CreateTransaction(input TransactionInput) (model.Transaction, error) {
	if !input.Type.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", validation.ErrInvalidType, input.Type)
	}
	amount, err := validation.ValidateAmount(input.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	l, err := ts.load()
	if err != nil {
		return model.Transaction{}, err
	}

	from, to := entryAccounts(input.Type, input.Counterparty)
	tx, err := l.Add(ledger.Entry{
		Type:        input.Type,
		Amount:      amount,
		FromAccount: from,
		ToAccount:   to,
		Description: input.Description,
	})
	if err != nil {
		return model.Transaction{}, err
	}
	ts.logTx("Transaction.Create", tx)

	return tx, ts.save(l)
}

// UpdateTransaction changes amount, counterparty and description of id.
func (ts *TransactionService) UpdateTransaction(id int64, input UpdateInput) (model.Transaction, error) {
	amount, err := validation.ValidateAmount(input.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	l, err := ts.load()
	if err != nil {
		return model.Transaction{}, err
	}

	current, err := l.Find(id)
	if err != nil {
		return model.Transaction{}, err
	}

	if ts.config.Security.ConfirmEdit {
		if err := ts.gate.Verify(input.Passcode); err != nil {
			return model.Transaction{}, err
		}
	}

	from, to := entryAccounts(current.Type, input.Counterparty)
	tx, err := l.Edit(id, ledger.Changes{
		Amount:      amount,
		FromAccount: from,
		ToAccount:   to,
		Description: input.Description,
	})
	if err != nil {
		return model.Transaction{}, err
	}
	ts.logTx("Transaction.Update", tx)

	return tx, ts.save(l)
}

// DeleteTransaction removes id once passcode is verified.
func (ts *TransactionService) DeleteTransaction(id int64, passcode string) (model.Transaction, error) {
	l, err := ts.load()
	if err != nil {
		return model.Transaction{}, err
	}

	tx, err := l.Delete(id, passcode)
	if err != nil {
		return model.Transaction{}, err
	}
	ts.logTx("Transaction.Delete", tx)

	return tx, ts.save(l)
}

// RequiresEditPasscode reports whether UpdateTransaction checks the passcode.
func (ts *TransactionService) RequiresEditPasscode() bool {
	return ts.config.Security.ConfirmEdit
}

// GetTransaction returns id with its global running balance.
func (ts *TransactionService) GetTransaction(id int64) (*TransactionDetail, error) {
	l, err := ts.load()
	if err != nil {
		return nil, err
	}

	tx, err := l.Find(id)
	if err != nil {
		return nil, err
	}
	after, err := l.RunningBalanceOf(id)
	if err != nil {
		return nil, err
	}

	position := 0
	for i, t := range l.Transactions() {
		if t.ID == id {
			position = i + 1
			break
		}
	}

	return &TransactionDetail{
		Transaction:  tx,
		BalanceAfter: after,
		Position:     position,
		Total:        l.Len(),
	}, nil
}

// MatchTransaction looks a transaction up by its values instead of its id.
func (ts *TransactionService) MatchTransaction(key ledger.Key) (*TransactionDetail, error) {
	l, err := ts.load()
	if err != nil {
		return nil, err
	}

	tx, err := l.Match(key)
	if err != nil {
		return nil, err
	}
	return ts.GetTransaction(tx.ID)
}

// ListTransactions applies f and builds statement rows. Without a filter the
// rows carry the global running balance; with one, a running balance over the
// matching rows only.
func (ts *TransactionService) ListTransactions(f query.Filter) (*Listing, error) {
	l, err := ts.load()
	if err != nil {
		return nil, err
	}

	all := l.Transactions()
	deposits, withdrawals := l.Totals()
	listing := &Listing{
		Filter:      f,
		Filtered:    f.Active(),
		Total:       len(all),
		Balance:     l.Balance(),
		Deposits:    deposits,
		Withdrawals: withdrawals,
	}

	if !listing.Filtered {
		listing.Rows = query.BuildRows(all, l.RunningBalances())
		listing.Count = len(all)
		return listing, nil
	}

	sub, err := query.Apply(all, f)
	if err != nil {
		return nil, err
	}
	listing.Rows = query.BuildRows(sub, query.DeriveRunningBalance(sub))
	listing.Count = len(sub)

	if term := strings.TrimSpace(f.Search); term != "" {
		balance := l.AccountBalance(term)
		listing.SearchBalance = &balance
	}
	return listing, nil
}

// AccountBalance is the net flow attributed to a counterparty name.
func (ts *TransactionService) AccountBalance(name string) (decimal.Decimal, error) {
	if err := validation.ValidateRequiredFields(name); err != nil {
		return decimal.Zero, fmt.Errorf("%w: account name is required", err)
	}

	l, err := ts.load()
	if err != nil {
		return decimal.Zero, err
	}
	return l.AccountBalance(strings.TrimSpace(name)), nil
}

func (ts *TransactionService) Balance() (decimal.Decimal, error) {
	l, err := ts.load()
	if err != nil {
		return decimal.Zero, err
	}
	return l.Balance(), nil
}

func (ts *TransactionService) Count() (int, error) {
	l, err := ts.load()
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}
