package ledger

import (
	"fmt"
	"strings"

	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/validation"
	"github.com/shopspring/decimal"
)

// Entry is a new transaction before it is dated and numbered.
type Entry struct {
	Type        model.TxType
	Amount      decimal.Decimal
	FromAccount string
	ToAccount   string
	Description string
}

// Changes are the editable fields of an existing transaction. Date and type
// never change.
type Changes struct {
	Amount      decimal.Decimal
	FromAccount string
	ToAccount   string
	Description string
}

// Key identifies a transaction by value, the way records were matched before
// transactions carried an id.
type Key struct {
	Date        string
	Type        model.TxType
	Amount      decimal.Decimal
	Description string
}

// counterparties keeps only the account label that belongs to the type.
func counterparties(t model.TxType, from, to string) (string, string) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if t == model.TypeWithdrawal {
		return "", to
	}
	return from, ""
}

func checkFields(t model.TxType, amount decimal.Decimal, from, to, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	counterparty := from
	if t == model.TypeWithdrawal {
		counterparty = to
	}
	if err := validation.ValidateRequiredFields(counterparty, description); err != nil {
		if t == model.TypeWithdrawal {
			return fmt.Errorf("%w: recipient and description are required", err)
		}
		return fmt.Errorf("%w: source and description are required", err)
	}
	return nil
}

// Add dates the entry today, appends it and updates the balance. A withdrawal
// larger than the current balance is rejected without touching the ledger.
func (l *Ledger) Add(e Entry) (model.Transaction, error) {
	if !e.Type.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", validation.ErrInvalidType, e.Type)
	}

	from, to := counterparties(e.Type, e.FromAccount, e.ToAccount)
	description := strings.TrimSpace(e.Description)
	if err := checkFields(e.Type, e.Amount, from, to, description); err != nil {
		return model.Transaction{}, err
	}

	if e.Type == model.TypeWithdrawal && e.Amount.GreaterThan(l.balance) {
		return model.Transaction{}, fmt.Errorf("%w: withdrawal %s exceeds balance %s",
			ErrInsufficientBalance, e.Amount, l.balance)
	}

	tx := model.Transaction{
		ID:          l.nextID,
		Date:        l.today(),
		Type:        e.Type,
		Amount:      e.Amount,
		FromAccount: from,
		ToAccount:   to,
		Description: description,
	}

	l.nextID++
	l.transactions = append(l.transactions, tx)
	l.balance = l.balance.Add(tx.Signed())

	return tx, nil
}

// Edit replaces amount, counterparty and description of transaction id.
//
// Deposit: balance += new - old. Withdrawal: balance += old - new, and the new
// amount may not exceed balance + old.
func (l *Ledger) Edit(id int64, c Changes) (model.Transaction, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return model.Transaction{}, err
	}
	old := l.transactions[i]

	from, to := counterparties(old.Type, c.FromAccount, c.ToAccount)
	description := strings.TrimSpace(c.Description)
	if err := checkFields(old.Type, c.Amount, from, to, description); err != nil {
		return model.Transaction{}, err
	}

	var delta decimal.Decimal
	if old.Type == model.TypeDeposit {
		delta = c.Amount.Sub(old.Amount)
	} else {
		available := l.balance.Add(old.Amount)
		if c.Amount.GreaterThan(available) {
			return model.Transaction{}, fmt.Errorf("%w: withdrawal %s exceeds available %s",
				ErrInsufficientBalance, c.Amount, available)
		}
		delta = old.Amount.Sub(c.Amount)
	}

	updated := old
	updated.Amount = c.Amount
	updated.FromAccount = from
	updated.ToAccount = to
	updated.Description = description

	l.transactions[i] = updated
	l.balance = l.balance.Add(delta)

	return updated, nil
}

// Delete removes transaction id after the gate accepts passcode, and reverses
// its effect on the balance.
func (l *Ledger) Delete(id int64, passcode string) (model.Transaction, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return model.Transaction{}, err
	}

	if l.gate == nil {
		return model.Transaction{}, ErrAuthenticationFailed
	}
	if err := l.gate.Verify(passcode); err != nil {
		return model.Transaction{}, err
	}

	removed := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.balance = l.balance.Sub(removed.Signed())

	return removed, nil
}

// Match returns the single transaction equal to k. Zero or several matches
// is ErrAmbiguousOrMissingTransaction.
func (l *Ledger) Match(k Key) (model.Transaction, error) {
	var (
		found model.Transaction
		count int
	)
	for _, tx := range l.transactions {
		if tx.Date == k.Date && tx.Type == k.Type && tx.Amount.Equal(k.Amount) && tx.Description == k.Description {
			found = tx
			count++
		}
	}
	if count != 1 {
		return model.Transaction{}, fmt.Errorf("%w: %d transactions match", ErrAmbiguousOrMissingTransaction, count)
	}
	return found, nil
}
