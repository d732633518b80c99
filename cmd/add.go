package cmd

import (
	"errors"
	"fmt"

	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/hance08/statement/internal/utils"
	"github.com/hance08/statement/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type   string
	Amount string
	From   string
	To     string
	Desc   string
}

type addRunner struct {
	d       *deps
	flags   *addFlags
	cmd     *cobra.Command
	txType  model.TxType
	logData *logging.LogData
}

func NewAddCmd(d *deps) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a deposit or withdrawal",
		Long: `Add a new transaction to your statement.

Deposits record who the money was received from; withdrawals record the
recipient. Withdrawals larger than the current balance are rejected.
Missing fields are asked for interactively.`,
		Example: `  # Interactive mode
  statement add

  # Quick mode with flags
  statement add --type deposit --amount 100 --from Alice --desc "salary"
  statement add -t w -a 30 --to Bob -d "rent"`,
		Args: cobra.NoArgs,
		RunE: d.wrap("Add", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			runner := &addRunner{d: d, flags: flags, cmd: cmd, logData: logData}
			return runner.Run()
		}),
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: deposit (d) or withdrawal (w)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.From, "from", "f", "", "Who the deposit was received from")
	cmd.Flags().StringVar(&flags.To, "to", "", "Recipient of the withdrawal")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")

	return cmd
}

// newShortcutCmd builds deposit and withdraw, which take
// [amount] [counterparty] [description] as arguments.
func newShortcutCmd(d *deps, use string, txType model.TxType, example string) *cobra.Command {
	label := prompts.CounterpartyLabel(txType)

	return &cobra.Command{
		Use:     use + " [amount] [counterparty] [description]",
		Short:   fmt.Sprintf("Record a %s", txType),
		Long:    fmt.Sprintf("Record a %s. The counterparty is the %s.", txType, label),
		Example: example,
		Args:    cobra.MaximumNArgs(3),
		RunE: d.wrap(string(txType), func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			flags := &addFlags{}
			values := []*string{&flags.Amount, &flags.From, &flags.Desc}
			if txType == model.TypeWithdrawal {
				values[1] = &flags.To
			}
			for i, arg := range args {
				*values[i] = arg
			}

			runner := &addRunner{d: d, flags: flags, cmd: cmd, txType: txType, logData: logData}
			return runner.Run()
		}),
	}
}

func NewDepositCmd(d *deps) *cobra.Command {
	return newShortcutCmd(d, "deposit", model.TypeDeposit, `  statement deposit 100 Alice "salary"`)
}

func NewWithdrawCmd(d *deps) *cobra.Command {
	return newShortcutCmd(d, "withdraw", model.TypeWithdrawal, `  statement withdraw 30 Bob "rent"`)
}

func (r *addRunner) Run() error {
	form, err := r.collect()
	if err != nil {
		return err
	}

	svc := r.d.app.Service.Transaction
	tx, err := svc.CreateTransaction(service.TransactionInput{
		Type:         form.Type,
		Amount:       form.Amount,
		Counterparty: form.Counterparty,
		Description:  form.Description,
	})
	if err != nil && !errors.Is(err, service.ErrPersistenceFailure) {
		return err
	}
	r.logData.AddData("id", tx.ID)
	r.logData.AddData("type", string(tx.Type))

	if err != nil {
		pterm.Warning.Printf("Transaction #%d was recorded but could not be saved\n", tx.ID)
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %d)\n", tx.ID)

	balance, err := svc.Balance()
	if err != nil {
		return err
	}
	return views.RenderTransactionSummary(tx, balance, r.d.currency())
}

func (r *addRunner) collect() (*prompts.TransactionForm, error) {
	form := &prompts.TransactionForm{
		Type:        r.txType,
		Amount:      r.flags.Amount,
		Description: r.flags.Desc,
	}

	if form.Type == "" && r.flags.Type != "" {
		t, err := validation.ParseTxType(r.flags.Type)
		if err != nil {
			return nil, err
		}
		form.Type = t
	}
	if form.Type == "" {
		switch {
		case r.flags.From != "" && r.flags.To == "":
			form.Type = model.TypeDeposit
		case r.flags.To != "" && r.flags.From == "":
			form.Type = model.TypeWithdrawal
		default:
			t, err := prompts.PromptTransactionType()
			if err != nil {
				return nil, err
			}
			form.Type = t
		}
	}

	switch form.Type {
	case model.TypeDeposit:
		if r.flags.To != "" {
			return nil, fmt.Errorf("deposits take --from, not --to")
		}
		form.Counterparty = r.flags.From
	case model.TypeWithdrawal:
		if r.flags.From != "" {
			return nil, fmt.Errorf("withdrawals take --to, not --from")
		}
		form.Counterparty = r.flags.To
	}

	hint := ""
	if form.Type == model.TypeWithdrawal {
		balance, err := r.d.app.Service.Transaction.Balance()
		if err != nil {
			return nil, err
		}
		hint = "Available: " + utils.FormatWithCurrency(balance, r.d.currency())
	}

	if err := prompts.PromptTransactionForm(form, hint); err != nil {
		return nil, err
	}
	return form, nil
}
