package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/validation"
)

// TransactionForm holds the fields collected for a new or edited transaction.
type TransactionForm struct {
	Type         model.TxType
	Amount       string
	Counterparty string
	Description  string
}

// CounterpartyLabel names the account field for t.
func CounterpartyLabel(t model.TxType) string {
	if t == model.TypeWithdrawal {
		return "Recipient"
	}
	return "Received from"
}

// PromptTransactionType prompts for Deposit or Withdrawal
func PromptTransactionType() (model.TxType, error) {
	selected := model.TypeDeposit

	err := huh.NewSelect[model.TxType]().
		Title("Choose the transaction type:").
		Options(
			huh.NewOption("Deposit", model.TypeDeposit),
			huh.NewOption("Withdrawal", model.TypeWithdrawal),
		).
		Value(&selected).
		Run()

	return selected, err
}

// PromptTransactionForm collects the fields of form that are still empty.
// form.Type must already be set.
func PromptTransactionForm(form *TransactionForm, balanceHint string) error {
	var fields []huh.Field

	if form.Amount == "" {
		fields = append(fields, huh.NewInput().
			Title("Amount:").
			Description(balanceHint).
			Validate(validation.AmountInput).
			Value(&form.Amount))
	}
	if strings.TrimSpace(form.Counterparty) == "" {
		label := CounterpartyLabel(form.Type)
		fields = append(fields, huh.NewInput().
			Title(label+":").
			Validate(validation.RequiredInput(strings.ToLower(label))).
			Value(&form.Counterparty))
	}
	if strings.TrimSpace(form.Description) == "" {
		fields = append(fields, huh.NewText().
			Title("Description:").
			Lines(3).
			Validate(validation.RequiredInput("description")).
			Value(&form.Description))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// PromptEditForm shows every editable field prefilled with its current value.
func PromptEditForm(form *TransactionForm) error {
	label := CounterpartyLabel(form.Type)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount:").
				Validate(validation.AmountInput).
				Value(&form.Amount),
			huh.NewInput().
				Title(label+":").
				Validate(validation.RequiredInput(strings.ToLower(label))).
				Value(&form.Counterparty),
			huh.NewText().
				Title("Description:").
				Lines(3).
				Validate(validation.RequiredInput("description")).
				Value(&form.Description),
		).Title("Edit " + string(form.Type)),
	).Run()
}

// TransactionOption is one choice in PromptTransactionSelect.
type TransactionOption struct {
	ID    int64
	Label string
}

// PromptTransactionSelect lets the user pick a transaction when no id was given.
func PromptTransactionSelect(title string, options []TransactionOption) (int64, error) {
	var selected int64

	opts := make([]huh.Option[int64], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.ID))
	}

	err := huh.NewSelect[int64]().
		Title(title).
		Options(opts...).
		Height(12).
		Value(&selected).
		Run()

	return selected, err
}
