package ledger

import (
	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
)

// RunningBalances returns the cumulative signed sum after each transaction,
// in storage order. The last element always equals Balance.
func (l *Ledger) RunningBalances() []decimal.Decimal {
	balances := make([]decimal.Decimal, 0, len(l.transactions))
	running := decimal.Zero
	for _, tx := range l.transactions {
		running = running.Add(tx.Signed())
		balances = append(balances, running)
	}
	return balances
}

// RunningBalanceOf returns the global running balance right after id.
func (l *Ledger) RunningBalanceOf(id int64) (decimal.Decimal, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return decimal.Zero, err
	}
	return l.RunningBalances()[i], nil
}

// AccountBalance is the net flow attributed to name: deposits received from
// name count positive, withdrawals paid to name count negative.
func (l *Ledger) AccountBalance(name string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.transactions {
		switch {
		case tx.Type == model.TypeDeposit && tx.FromAccount == name:
			total = total.Add(tx.Amount)
		case tx.Type == model.TypeWithdrawal && tx.ToAccount == name:
			total = total.Sub(tx.Amount)
		}
	}
	return total
}

// Totals sums deposits and withdrawals separately.
func (l *Ledger) Totals() (deposits, withdrawals decimal.Decimal) {
	deposits, withdrawals = decimal.Zero, decimal.Zero
	for _, tx := range l.transactions {
		if tx.Type == model.TypeDeposit {
			deposits = deposits.Add(tx.Amount)
		} else {
			withdrawals = withdrawals.Add(tx.Amount)
		}
	}
	return deposits, withdrawals
}
