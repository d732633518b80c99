package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type exportTransaction struct {
	ID          int64  `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Type        string `json:"type" yaml:"type"`
	Amount      string `json:"amount" yaml:"amount"`
	FromAccount string `json:"from_account" yaml:"from_account"`
	ToAccount   string `json:"to_account" yaml:"to_account"`
	Description string `json:"description" yaml:"description"`
}

type exportDocument struct {
	Currency     string              `json:"currency" yaml:"currency"`
	Balance      string              `json:"balance" yaml:"balance"`
	Transactions []exportTransaction `json:"transactions" yaml:"transactions"`
}

// Export writes the whole ledger to w as json or yaml. Amounts are written as
// decimal strings so no precision is lost.
func (ts *TransactionService) Export(format string, w io.Writer) error {
	l, err := ts.load()
	if err != nil {
		return err
	}

	txs := l.Transactions()
	doc := exportDocument{
		Currency:     ts.config.Defaults.Currency,
		Balance:      l.Balance().StringFixed(2),
		Transactions: make([]exportTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		doc.Transactions = append(doc.Transactions, exportTransaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        string(tx.Type),
			Amount:      tx.Amount.String(),
			FromAccount: tx.FromAccount,
			ToAccount:   tx.ToAccount,
			Description: tx.Description,
		})
	}

	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(doc)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (must be json or yaml)", ErrUnknownFormat, format)
	}
}
