package views

import (
	"fmt"

	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	currency string
}

func NewTransactionListView(currency string) *TransactionListView {
	return &TransactionListView{currency: currency}
}

func (v *TransactionListView) Render(listing *service.Listing) error {
	if listing.Total == 0 {
		pterm.Warning.Println("No transactions yet")
		return v.renderSummary(listing)
	}
	if len(listing.Rows) == 0 {
		pterm.Warning.Println("No transactions match the filter")
		return v.renderSummary(listing)
	}

	if listing.Filtered {
		pterm.DefaultSection.Printf("Statement (%d of %d transactions)", listing.Count, listing.Total)
	} else {
		pterm.DefaultSection.Println("Statement")
	}

	balanceHeader := "Balance"
	if listing.Filtered {
		balanceHeader = "Balance (filtered)"
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Deposit", "Received From", "Withdrawal", "Recipient", "Description", balanceHeader},
	}

	for _, row := range listing.Rows {
		deposit, withdrawal := row.Deposit, row.Withdrawal
		if row.Type == model.TypeDeposit {
			deposit = pterm.Green(deposit)
		} else {
			withdrawal = pterm.Red(withdrawal)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", row.ID),
			row.Date,
			deposit,
			row.From,
			withdrawal,
			row.To,
			truncate(row.Description, 40),
			row.Balance,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if listing.Filtered {
		pterm.Info.Println("Balance column is the running balance over the rows shown, not the ledger balance.")
	}
	return v.renderSummary(listing)
}

func (v *TransactionListView) renderSummary(listing *service.Listing) error {
	pterm.Println()

	if listing.SearchBalance != nil {
		pterm.Info.Printf("Account balance for %q: %s\n",
			listing.Filter.Search, utils.FormatWithCurrency(*listing.SearchBalance, v.currency))
	}

	return RenderBalance(BalanceItem{
		Currency:    v.currency,
		Count:       listing.Total,
		Balance:     listing.Balance,
		Deposits:    listing.Deposits,
		Withdrawals: listing.Withdrawals,
	})
}
