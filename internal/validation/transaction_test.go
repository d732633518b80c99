package validation

import (
	"testing"

	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "fraction", input: "12.345", want: "12.345"},
		{name: "surrounding spaces", input: "  7.5 ", want: "7.5"},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "at maximum", input: "1000000000000", want: "1000000000000"},
		{name: "above maximum", input: "1000000000000.01", wantErr: true},
		{name: "huge exponent", input: "1e30", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateAmount(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	assert.NoError(t, ValidateRequiredFields("a", "b"))
	assert.NoError(t, ValidateRequiredFields())
	assert.ErrorIs(t, ValidateRequiredFields("a", "   "), ErrMissingRequiredField)
	assert.ErrorIs(t, ValidateRequiredFields(""), ErrMissingRequiredField)
}

func TestValidatePasscode(t *testing.T) {
	for _, ok := range []string{"1234", "0000", "9876"} {
		assert.NoError(t, ValidatePasscode(ok), ok)
	}
	for _, bad := range []string{"", "123", "12345", "12a4", " 123", "١٢٣٤"} {
		assert.ErrorIs(t, ValidatePasscode(bad), ErrInvalidPasscode, bad)
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-02-28"))
	assert.ErrorIs(t, ValidateDate("2025-02-30"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("28/02/2025"), ErrInvalidDate)
	assert.NoError(t, OptionalDateInput(""))
}

func TestParseTxType(t *testing.T) {
	got, err := ParseTxType("Deposit")
	require.NoError(t, err)
	assert.Equal(t, model.TypeDeposit, got)

	got, err = ParseTxType(" w ")
	require.NoError(t, err)
	assert.Equal(t, model.TypeWithdrawal, got)

	_, err = ParseTxType("transfer")
	assert.ErrorIs(t, err, ErrInvalidType)
}
