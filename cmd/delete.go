package cmd

import (
	"errors"

	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(d *deps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long: `Delete a transaction and reverse its effect on the balance.
The passcode is always asked for again before deleting.`,
		Example: `  statement delete 4
  statement delete 4 --yes --passcode 1234`,
		Args: cobra.MaximumNArgs(1),
		RunE: d.wrap("Delete", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			svc := d.app.Service.Transaction

			id, err := d.resolveID(args, "Which transaction do you want to delete?")
			if err != nil {
				return err
			}
			detail, err := svc.GetTransaction(id)
			if err != nil {
				return err
			}
			logData.AddData("id", id)

			if err := views.RenderTransactionDeletePreview(detail.Transaction, d.currency()); err != nil {
				return err
			}

			if !yes {
				confirmed, err := prompts.PromptConfirm("Are you sure you want to delete this transaction?", false)
				if err != nil {
					return err
				}
				if !confirmed {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			code, err := d.confirmPasscode("Enter your passcode to delete:")
			if err != nil {
				return err
			}

			removed, err := svc.DeleteTransaction(id, code)
			if err != nil && !errors.Is(err, service.ErrPersistenceFailure) {
				return err
			}
			if err != nil {
				pterm.Warning.Printf("Transaction #%d was removed but the change could not be saved\n", id)
				return err
			}

			views.RenderTransactionDeleteSuccess(removed)

			balance, err := svc.Balance()
			if err != nil {
				return err
			}
			pterm.Info.Printf("Current balance: %s\n", formatBalance(balance, d.currency()))
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation question")

	return cmd
}
