package service

import (
	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/query"
	"github.com/shopspring/decimal"
)

// TransactionInput represents user input for creating a transaction.
// Amount is the raw text the user typed.
type TransactionInput struct {
	Type         model.TxType
	Amount       string
	Counterparty string
	Description  string
}

// UpdateInput represents the editable fields of an existing transaction.
// Passcode is only checked when security.confirm_edit is on.
type UpdateInput struct {
	Amount       string
	Counterparty string
	Description  string
	Passcode     string
}

// TransactionDetail is one transaction with the ledger balance right after it.
type TransactionDetail struct {
	Transaction  model.Transaction
	BalanceAfter decimal.Decimal
	Position     int
	Total        int
}

// Listing is a statement view: the rows that passed the filter and a summary
// of the whole ledger.
type Listing struct {
	Rows     []query.Row
	Filter   query.Filter
	Filtered bool
	Count    int
	Total    int

	Balance     decimal.Decimal
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal

	// SearchBalance is AccountBalance of the search term, set only when the
	// filter has one.
	SearchBalance *decimal.Decimal
}
