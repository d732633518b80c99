package views

import (
	"fmt"

	"github.com/hance08/statement/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type BalanceItem struct {
	Currency    string
	Count       int
	Balance     decimal.Decimal
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}

// RenderBalance prints the status bar: transaction count, totals and balance.
func RenderBalance(item BalanceItem) error {
	balance := utils.FormatWithCurrency(item.Balance, item.Currency)
	if item.Balance.IsNegative() {
		balance = pterm.Red(balance)
	} else {
		balance = pterm.Green(balance)
	}

	tableData := pterm.TableData{
		{"Transactions", fmt.Sprintf("%d", item.Count)},
		{"Total Deposits", utils.FormatWithCurrency(item.Deposits, item.Currency)},
		{"Total Withdrawals", utils.FormatWithCurrency(item.Withdrawals, item.Currency)},
		{"Current Balance", balance},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderAccountBalance prints the net flow attributed to one counterparty.
func RenderAccountBalance(name string, amount decimal.Decimal, currency string) {
	pterm.Info.Printf("Account balance for %q: %s\n", name, utils.FormatWithCurrency(amount, currency))
}
