package store

import (
	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// LedgerDocument is the persisted form of the ledger. Balance is informational:
// readers must recompute it from Transactions.
type LedgerDocument struct {
	Transactions []model.Transaction `json:"transactions"`
	Balance      decimal.Decimal     `json:"balance"`
	// NextID keeps deleted ids from being handed out again.
	NextID int64 `json:"next_id,omitempty"`
}

type PasscodeDocument struct {
	Passcode string `json:"passcode"`
}
