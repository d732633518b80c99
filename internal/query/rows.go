package query

import (
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/utils"
	"github.com/shopspring/decimal"
)

const emptyAmount = "0.00"

// Row is one line of the statement table. The unused amount column holds
// "0.00", and so does a sub-cent amount, so Type is what tells them apart.
type Row struct {
	ID          int64
	Date        string
	Type        model.TxType
	Deposit     string
	From        string
	Withdrawal  string
	To          string
	Description string
	Balance     string
}

// BuildRows pairs each transaction with the balance at the same index.
func BuildRows(txs []model.Transaction, balances []decimal.Decimal) []Row {
	rows := make([]Row, 0, len(txs))
	for i, tx := range txs {
		row := Row{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        tx.Type,
			Deposit:     emptyAmount,
			From:        tx.FromAccount,
			Withdrawal:  emptyAmount,
			To:          tx.ToAccount,
			Description: tx.Description,
		}
		if tx.Type == model.TypeDeposit {
			row.Deposit = utils.FormatAmount(tx.Amount)
		} else {
			row.Withdrawal = utils.FormatAmount(tx.Amount)
		}
		if i < len(balances) {
			row.Balance = utils.FormatAmount(balances[i])
		}
		rows = append(rows, row)
	}
	return rows
}
