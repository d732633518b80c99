package cmd

import (
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/query"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewBalanceCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account]",
		Short: "Show the current balance, or the balance of one account",
		Long: `Without an argument, show the transaction count, total deposits, total
withdrawals and the current balance.

With an account name, show the net amount for that counterparty: deposits
received from it count positive, withdrawals paid to it count negative.`,
		Example: `  statement balance
  statement balance Alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: d.wrap("Balance", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			svc := d.app.Service.Transaction

			if len(args) == 1 {
				amount, err := svc.AccountBalance(args[0])
				if err != nil {
					return err
				}
				logData.AddData("account", args[0])
				views.RenderAccountBalance(args[0], amount, d.currency())
				return nil
			}

			listing, err := svc.ListTransactions(query.Filter{})
			if err != nil {
				return err
			}
			return views.RenderBalance(views.BalanceItem{
				Currency:    d.currency(),
				Count:       listing.Total,
				Balance:     listing.Balance,
				Deposits:    listing.Deposits,
				Withdrawals: listing.Withdrawals,
			})
		}),
	}
}
