package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/statement/internal/query"
	"github.com/hance08/statement/internal/validation"
)

// PromptFilter edits f in place. Dates are optional but must be well formed.
func PromptFilter(f *query.Filter) error {
	if f.Type == "" {
		f.Type = query.All
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[query.TypeFilter]().
				Title("Show:").
				Options(
					huh.NewOption("All transactions", query.All),
					huh.NewOption("Deposits only", query.DepositOnly),
					huh.NewOption("Withdrawals only", query.WithdrawalOnly),
				).
				Value(&f.Type),
			huh.NewInput().
				Title("Search:").
				Description("Matches sender, recipient or description. Leave empty to skip.").
				Value(&f.Search),
			huh.NewInput().
				Title("From date (YYYY-MM-DD):").
				Validate(validation.OptionalDateInput).
				Value(&f.FromDate),
			huh.NewInput().
				Title("To date (YYYY-MM-DD):").
				Validate(validation.OptionalDateInput).
				Value(&f.ToDate),
		),
	).Run()
}
