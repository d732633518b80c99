package views

import (
	"github.com/hance08/statement/internal/model"
	"github.com/pterm/pterm"
)

func colorByType(t model.TxType, text string) string {
	switch t {
	case model.TypeDeposit:
		return pterm.Green(text)
	case model.TypeWithdrawal:
		return pterm.Red(text)
	default:
		return text
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
