package utils

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/hance08/statement/internal/constants"
	"github.com/shopspring/decimal"
)

var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

func toCentsDecimal(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(constants.CentsPerUnit)).Round(0)
}

// ToCents rounds amount half away from zero to whole cents. The result is
// only meaningful when the cents fit in an int64.
func ToCents(amount decimal.Decimal) int64 {
	return toCentsDecimal(amount).IntPart()
}

// FormatAmount renders amount with two decimals and thousands separators,
// e.g. 1234.5 -> "1,234.50". Amounts whose cents do not fit in an int64 are
// grouped by hand instead of going through go-money.
func FormatAmount(amount decimal.Decimal) string {
	cents := toCentsDecimal(amount)
	if cents.Abs().BigInt().IsInt64() {
		return amountFormatter.Format(cents.IntPart())
	}
	return groupFixed(amount)
}

func groupFixed(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func FormatWithCurrency(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(amount)
	}
	return fmt.Sprintf("%s %s", FormatAmount(amount), currency)
}
