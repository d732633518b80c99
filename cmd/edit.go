package cmd

import (
	"errors"

	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Amount       string
	Counterparty string
	Desc         string
}

type editRunner struct {
	d       *deps
	flags   *editFlags
	cmd     *cobra.Command
	logData *logging.LogData
}

func NewEditCmd(d *deps) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit the amount, counterparty or description of a transaction",
		Long: `Edit a transaction. Date and type never change.

Without flags every editable field is shown prefilled. Flags change only
the fields given. A withdrawal cannot grow beyond what the balance allows.`,
		Example: `  statement edit 2
  statement edit 2 --amount 45.50`,
		Args: cobra.MaximumNArgs(1),
		RunE: d.wrap("Edit", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			runner := &editRunner{d: d, flags: flags, cmd: cmd, logData: logData}
			return runner.Run(args)
		}),
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVarP(&flags.Counterparty, "counterparty", "p", "", "New sender (deposit) or recipient (withdrawal)")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "New description")

	return cmd
}

func (r *editRunner) hasFlags() bool {
	return r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("counterparty") ||
		r.cmd.Flags().Changed("desc")
}

func (r *editRunner) Run(args []string) error {
	svc := r.d.app.Service.Transaction

	id, err := r.d.resolveID(args, "Which transaction do you want to edit?")
	if err != nil {
		return err
	}
	detail, err := svc.GetTransaction(id)
	if err != nil {
		return err
	}
	current := detail.Transaction
	r.logData.AddData("id", id)

	form := &prompts.TransactionForm{
		Type:         current.Type,
		Amount:       current.Amount.String(),
		Counterparty: current.Counterparty(),
		Description:  current.Description,
	}

	if r.hasFlags() {
		if r.flags.Amount != "" {
			form.Amount = r.flags.Amount
		}
		if r.flags.Counterparty != "" {
			form.Counterparty = r.flags.Counterparty
		}
		if r.flags.Desc != "" {
			form.Description = r.flags.Desc
		}
	} else if err := prompts.PromptEditForm(form); err != nil {
		return err
	}

	input := service.UpdateInput{
		Amount:       form.Amount,
		Counterparty: form.Counterparty,
		Description:  form.Description,
	}
	if svc.RequiresEditPasscode() {
		code, err := r.d.confirmPasscode("Enter your passcode to confirm the edit:")
		if err != nil {
			return err
		}
		input.Passcode = code
	}

	updated, err := svc.UpdateTransaction(id, input)
	if err != nil && !errors.Is(err, service.ErrPersistenceFailure) {
		return err
	}
	if err != nil {
		pterm.Warning.Printf("Transaction #%d was changed but could not be saved\n", id)
		return err
	}

	pterm.Success.Printf("Transaction #%d updated\n", updated.ID)
	return r.render(updated)
}

func (r *editRunner) render(tx model.Transaction) error {
	balance, err := r.d.app.Service.Transaction.Balance()
	if err != nil {
		return err
	}
	return views.RenderTransactionSummary(tx, balance, r.d.currency())
}
