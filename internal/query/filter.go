package query

import (
	"strings"

	"github.com/hance08/statement/internal/model"
)

// Filter combines the three view filters. Zero value selects everything.
type Filter struct {
	Type     TypeFilter
	Search   string
	FromDate string
	ToDate   string
}

// Active reports whether any filter narrows the view.
func (f Filter) Active() bool {
	return (f.Type != "" && f.Type != All) ||
		strings.TrimSpace(f.Search) != "" ||
		f.FromDate != "" || f.ToDate != ""
}

// Apply runs type, search and date filters in that order. A date range needs
// both ends; giving only one is ErrInvalidDateRange.
func Apply(txs []model.Transaction, f Filter) ([]model.Transaction, error) {
	out := FilterByType(txs, f.Type)

	if strings.TrimSpace(f.Search) != "" {
		out = Search(out, f.Search)
	}

	if f.FromDate != "" || f.ToDate != "" {
		return FilterByDateRange(out, f.FromDate, f.ToDate)
	}
	return out, nil
}
