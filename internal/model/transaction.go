package model

import "github.com/shopspring/decimal"

type TxType string

const (
	TypeDeposit    TxType = "Deposit"
	TypeWithdrawal TxType = "Withdrawal"
)

func (t TxType) Valid() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Sign returns +1 for deposits and -1 for withdrawals.
func (t TxType) Sign() decimal.Decimal {
	if t == TypeWithdrawal {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Description string          `json:"description"`
}

// Signed returns the amount with the sign of its type applied.
func (t Transaction) Signed() decimal.Decimal {
	return t.Amount.Mul(t.Type.Sign())
}

// Counterparty returns the account label that is meaningful for the type.
func (t Transaction) Counterparty() string {
	if t.Type == TypeWithdrawal {
		return t.ToAccount
	}
	return t.FromAccount
}
