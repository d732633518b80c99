package views

import (
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderTransactionSummary prints a transaction that was just saved together
// with the new ledger balance.
func RenderTransactionSummary(tx model.Transaction, balance decimal.Decimal, currency string) error {
	pterm.DefaultSection.Println("Transaction Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", tx.Date},
		{"Type", colorByType(tx.Type, string(tx.Type))},
		{"Amount", utils.FormatWithCurrency(tx.Amount, currency)},
		counterpartyRow(tx),
		{"Description", tx.Description},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Current balance: %s\n", utils.FormatWithCurrency(balance, currency))
	return nil
}
