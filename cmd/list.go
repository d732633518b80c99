package cmd

import (
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/query"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type        string
	Search      string
	FromDate    string
	ToDate      string
	Interactive bool
}

func NewListCmd(d *deps) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the statement",
		Long: `Show every transaction with its running balance, followed by the total
deposits, total withdrawals and current balance.

Filters narrow the rows. When a filter is active the balance column is
recomputed over the matching rows only.`,
		Example: `  statement list
  statement list --type withdrawal
  statement list --search alice
  statement list --from-date 2025-01-01 --to-date 2025-01-31
  statement list -i`,
		Args: cobra.NoArgs,
		RunE: d.wrap("List", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			typeFilter, err := query.ParseTypeFilter(flags.Type)
			if err != nil {
				return err
			}
			filter := query.Filter{
				Type:     typeFilter,
				Search:   flags.Search,
				FromDate: flags.FromDate,
				ToDate:   flags.ToDate,
			}

			if flags.Interactive {
				if err := prompts.PromptFilter(&filter); err != nil {
					return err
				}
			}

			listing, err := d.app.Service.Transaction.ListTransactions(filter)
			if err != nil {
				return err
			}
			logData.AddData("rows", listing.Count)
			logData.AddData("filtered", listing.Filtered)

			return views.NewTransactionListView(d.currency()).Render(listing)
		}),
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "all", "Show all, deposit or withdrawal")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Case-insensitive search over sender, recipient and description")
	cmd.Flags().StringVar(&flags.FromDate, "from-date", "", "Start of date range (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&flags.ToDate, "to-date", "", "End of date range (YYYY-MM-DD, inclusive)")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Choose filters interactively")

	return cmd
}
