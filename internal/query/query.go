// Package query derives filtered views of a transaction sequence.
//
// Every function preserves the order it is given. A filtered view carries its
// own running balance (DeriveRunningBalance) that only sums the rows in the
// view, so it generally does not reconcile with the ledger balance.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateRange = errors.New("invalid date range")

type TypeFilter string

const (
	All            TypeFilter = constants.FilterAll
	DepositOnly    TypeFilter = constants.FilterDeposit
	WithdrawalOnly TypeFilter = constants.FilterWithdrawal
)

// ParseTypeFilter accepts all, deposit or withdrawal in any case. Empty means all.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "deposit", "deposits", "d":
		return DepositOnly, nil
	case "withdrawal", "withdrawals", "w":
		return WithdrawalOnly, nil
	default:
		return "", fmt.Errorf("unknown type filter %q (must be all, deposit or withdrawal)", s)
	}
}

func FilterByType(txs []model.Transaction, f TypeFilter) []model.Transaction {
	var want model.TxType
	switch f {
	case DepositOnly:
		want = model.TypeDeposit
	case WithdrawalOnly:
		want = model.TypeWithdrawal
	default:
		out := make([]model.Transaction, len(txs))
		copy(out, txs)
		return out
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == want {
			out = append(out, tx)
		}
	}
	return out
}

// Search keeps transactions whose from, to or description contains term,
// ignoring case.
func Search(txs []model.Transaction, term string) []model.Transaction {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.FromAccount), needle) ||
			strings.Contains(strings.ToLower(tx.ToAccount), needle) ||
			strings.Contains(strings.ToLower(tx.Description), needle) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByDateRange keeps transactions dated within [from, to]. A malformed
// boundary returns an empty result together with ErrInvalidDateRange.
// Transactions whose own date does not parse are left out.
func FilterByDateRange(txs []model.Transaction, from, to string) ([]model.Transaction, error) {
	start, err := time.Parse(constants.DateFormat, from)
	if err != nil {
		return []model.Transaction{}, fmt.Errorf("%w: from date %q", ErrInvalidDateRange, from)
	}
	end, err := time.Parse(constants.DateFormat, to)
	if err != nil {
		return []model.Transaction{}, fmt.Errorf("%w: to date %q", ErrInvalidDateRange, to)
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		date, err := time.Parse(constants.DateFormat, tx.Date)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// DeriveRunningBalance sums only the given rows, in the given order.
func DeriveRunningBalance(txs []model.Transaction) []decimal.Decimal {
	balances := make([]decimal.Decimal, 0, len(txs))
	running := decimal.Zero
	for _, tx := range txs {
		running = running.Add(tx.Signed())
		balances = append(balances, running)
	}
	return balances
}
