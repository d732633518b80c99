package views

import (
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/ui"
	"github.com/hance08/statement/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx model.Transaction, currency string) error {
	pterm.Warning.Printf("About to delete transaction #%d:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", tx.Date},
		{"Type", string(tx.Type)},
		{"Amount", utils.FormatWithCurrency(tx.Amount, currency)},
		counterpartyRow(tx),
		{"Description", tx.Description},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(tx model.Transaction) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", tx.ID)
	ui.Separator()
}
