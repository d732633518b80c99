package views

import (
	"fmt"

	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui"
	"github.com/hance08/statement/internal/utils"
	"github.com/pterm/pterm"
)

func counterpartyRow(tx model.Transaction) []string {
	if tx.Type == model.TypeWithdrawal {
		return []string{"Recipient", tx.ToAccount}
	}
	return []string{"Received From", tx.FromAccount}
}

func RenderTransactionDetail(detail *service.TransactionDetail, currency string) error {
	tx := detail.Transaction

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", tx.Date},
		{"Type", colorByType(tx.Type, string(tx.Type))},
		{"Amount", colorByType(tx.Type, utils.FormatWithCurrency(tx.Amount, currency))},
		counterpartyRow(tx),
		{"Description", tx.Description},
		{"Balance After", utils.FormatWithCurrency(detail.BalanceAfter, currency)},
		{"Position", fmt.Sprintf("%d of %d", detail.Position, detail.Total)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
