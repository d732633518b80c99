package cmd

import (
	"fmt"
	"strconv"

	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/query"
	"github.com/hance08/statement/internal/ui/prompts"
)

// resolveID parses the id argument, or lets the user pick a transaction when
// none was given.
func (d *deps) resolveID(args []string, title string) (int64, error) {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("invalid transaction ID %q", args[0])
		}
		return id, nil
	}

	listing, err := d.app.Service.Transaction.ListTransactions(query.Filter{})
	if err != nil {
		return 0, err
	}
	if len(listing.Rows) == 0 {
		return 0, fmt.Errorf("no transactions yet")
	}

	options := make([]prompts.TransactionOption, 0, len(listing.Rows))
	for i := len(listing.Rows) - 1; i >= 0; i-- {
		options = append(options, transactionOption(listing.Rows[i]))
	}

	return prompts.PromptTransactionSelect(title, options)
}

// transactionOption labels a row for the picker. Row.Type decides the column;
// a sub-cent amount shows as 0.00 in either one.
func transactionOption(row query.Row) prompts.TransactionOption {
	amount, party := row.Deposit, row.From
	if row.Type == model.TypeWithdrawal {
		amount, party = "-"+row.Withdrawal, row.To
	}
	return prompts.TransactionOption{
		ID:    row.ID,
		Label: fmt.Sprintf("#%-4d %s  %12s  %-16s %s", row.ID, row.Date, amount, party, row.Description),
	}
}
