package cmd

import (
	"github.com/hance08/statement/internal/ledger"
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/hance08/statement/internal/validation"
	"github.com/spf13/cobra"
)

type showFlags struct {
	Date   string
	Type   string
	Amount string
	Desc   string
}

func (f *showFlags) matching() bool {
	return f.Date != "" || f.Type != "" || f.Amount != "" || f.Desc != ""
}

func (f *showFlags) key() (ledger.Key, error) {
	if err := validation.ValidateDate(f.Date); err != nil {
		return ledger.Key{}, err
	}
	t, err := validation.ParseTxType(f.Type)
	if err != nil {
		return ledger.Key{}, err
	}
	amount, err := validation.ValidateAmount(f.Amount)
	if err != nil {
		return ledger.Key{}, err
	}
	return ledger.Key{Date: f.Date, Type: t, Amount: amount, Description: f.Desc}, nil
}

func NewShowCmd(d *deps) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one transaction and the balance after it",
		Long: `Show one transaction by ID. Without an ID, pick it from a list, or find
it by value with --date, --type, --amount and --desc (all four required,
exactly one transaction must match).`,
		Example: `  statement show 3
  statement show --date 2025-06-01 --type withdrawal --amount 30 --desc rent`,
		Args: cobra.MaximumNArgs(1),
		RunE: d.wrap("Show", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			svc := d.app.Service.Transaction

			var (
				detail *service.TransactionDetail
				err    error
			)
			if len(args) == 0 && flags.matching() {
				key, kerr := flags.key()
				if kerr != nil {
					return kerr
				}
				detail, err = svc.MatchTransaction(key)
			} else {
				id, ierr := d.resolveID(args, "Which transaction?")
				if ierr != nil {
					return ierr
				}
				detail, err = svc.GetTransaction(id)
			}
			if err != nil {
				return err
			}
			logData.AddData("id", detail.Transaction.ID)

			return views.RenderTransactionDetail(detail, d.currency())
		}),
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Date of the transaction (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "deposit or withdrawal")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Exact amount")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Exact description")

	return cmd
}
