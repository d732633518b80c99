package cmd

import (
	"github.com/hance08/statement/internal/utils"
	"github.com/shopspring/decimal"
)

// formatBalance renders a balance for one-line status messages.
func formatBalance(amount decimal.Decimal, currency string) string {
	return utils.FormatWithCurrency(amount, currency)
}
