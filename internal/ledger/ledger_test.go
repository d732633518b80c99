package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/hance08/statement/internal/model"
	"github.com/hance08/statement/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGate struct {
	code string
}

func (g stubGate) Verify(code string) error {
	if code != g.code {
		return ErrAuthenticationFailed
	}
	return nil
}

type stubSource struct {
	doc *store.LedgerDocument
	err error
}

func (s stubSource) LoadLedger() (*store.LedgerDocument, error) {
	return s.doc, s.err
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := New(nil, stubGate{code: "1234"}, WithClock(fixedClock))
	require.NoError(t, err)
	return l
}

func deposit(amount, from, desc string) Entry {
	return Entry{Type: model.TypeDeposit, Amount: d(amount), FromAccount: from, Description: desc}
}

func withdrawal(amount, to, desc string) Entry {
	return Entry{Type: model.TypeWithdrawal, Amount: d(amount), ToAccount: to, Description: desc}
}

// snapshot captures what a rejected operation must leave untouched.
func snapshot(l *Ledger) ([]model.Transaction, decimal.Decimal) {
	return l.Transactions(), l.Balance()
}

func assertUnchanged(t *testing.T, l *Ledger, txs []model.Transaction, balance decimal.Decimal) {
	t.Helper()
	assert.Equal(t, txs, l.Transactions())
	assert.True(t, balance.Equal(l.Balance()), "balance changed from %s to %s", balance, l.Balance())
}

func TestAdd_DepositAndWithdrawal(t *testing.T) {
	l := newTestLedger(t)

	dep, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dep.ID)
	assert.Equal(t, "2025-06-01", dep.Date)
	assert.Equal(t, "Alice", dep.FromAccount)
	assert.Empty(t, dep.ToAccount)
	assert.True(t, l.Balance().Equal(d("100")))

	wd, err := l.Add(withdrawal("30", "Bob", "rent"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), wd.ID)
	assert.True(t, l.Balance().Equal(d("70")))

	assert.True(t, l.AccountBalance("Alice").Equal(d("100")))
	assert.True(t, l.AccountBalance("Bob").Equal(d("-30")))
	assert.True(t, l.AccountBalance("Nobody").IsZero())
}

func TestAdd_NormalizesCounterparty(t *testing.T) {
	l := newTestLedger(t)

	tx, err := l.Add(Entry{
		Type:        model.TypeDeposit,
		Amount:      d("5"),
		FromAccount: "  Alice ",
		ToAccount:   "ignored",
		Description: " gift ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", tx.FromAccount)
	assert.Empty(t, tx.ToAccount)
	assert.Equal(t, "gift", tx.Description)
}

func TestAdd_KeepsFullPrecision(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Add(deposit("0.005", "Alice", "fraction"))
	require.NoError(t, err)
	_, err = l.Add(deposit("0.005", "Alice", "fraction"))
	require.NoError(t, err)

	assert.True(t, l.Balance().Equal(d("0.01")))
}

func TestAdd_WithdrawalOnEmptyLedger(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Add(withdrawal("50", "Bob", "rent"))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Balance().IsZero())
}

func TestAdd_WithdrawalOfWholeBalance(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add(deposit("40", "Alice", "in"))
	require.NoError(t, err)

	_, err = l.Add(withdrawal("40", "Bob", "out"))
	require.NoError(t, err)
	assert.True(t, l.Balance().IsZero())
}

func TestAdd_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{name: "zero amount", entry: deposit("0", "Alice", "x"), wantErr: ErrInvalidAmount},
		{name: "negative amount", entry: deposit("-1", "Alice", "x"), wantErr: ErrInvalidAmount},
		{name: "missing description", entry: deposit("1", "Alice", "  "), wantErr: ErrMissingRequiredField},
		{name: "missing source", entry: deposit("1", "", "x"), wantErr: ErrMissingRequiredField},
		{name: "missing recipient", entry: withdrawal("1", "", "x"), wantErr: ErrMissingRequiredField},
		{name: "overdraw", entry: withdrawal("10.01", "Bob", "x"), wantErr: ErrInsufficientBalance},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)
			_, err := l.Add(deposit("10", "Alice", "seed"))
			require.NoError(t, err)
			txs, balance := snapshot(l)

			_, err = l.Add(tc.entry)
			assert.ErrorIs(t, err, tc.wantErr)
			assertUnchanged(t, l, txs, balance)
		})
	}
}

func TestEdit_Deposit(t *testing.T) {
	l := newTestLedger(t)
	dep, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)

	updated, err := l.Edit(dep.ID, Changes{Amount: d("120"), FromAccount: "Alice Co", Description: "salary+bonus"})
	require.NoError(t, err)
	assert.Equal(t, dep.Date, updated.Date)
	assert.Equal(t, model.TypeDeposit, updated.Type)
	assert.Equal(t, "Alice Co", updated.FromAccount)
	assert.True(t, l.Balance().Equal(d("120")))
}

func TestEdit_Withdrawal(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	wd, err := l.Add(withdrawal("30", "Bob", "rent"))
	require.NoError(t, err)

	// Shrinking a withdrawal raises the balance.
	_, err = l.Edit(wd.ID, Changes{Amount: d("10"), ToAccount: "Bob", Description: "rent"})
	require.NoError(t, err)
	assert.True(t, l.Balance().Equal(d("90")))

	// Up to balance + old amount is allowed.
	_, err = l.Edit(wd.ID, Changes{Amount: d("100"), ToAccount: "Bob", Description: "rent"})
	require.NoError(t, err)
	assert.True(t, l.Balance().IsZero())
}

func TestEdit_WithdrawalInsufficientBalance(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	wd, err := l.Add(withdrawal("30", "Bob", "rent"))
	require.NoError(t, err)
	txs, balance := snapshot(l)

	// balance (70) + old (30) = 100
	_, err = l.Edit(wd.ID, Changes{Amount: d("100.01"), ToAccount: "Bob", Description: "rent"})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assertUnchanged(t, l, txs, balance)
}

func TestEdit_Rejections(t *testing.T) {
	l := newTestLedger(t)
	dep, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	txs, balance := snapshot(l)

	_, err = l.Edit(dep.ID, Changes{Amount: d("0"), FromAccount: "Alice", Description: "salary"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.Edit(dep.ID, Changes{Amount: d("5"), FromAccount: "", Description: "salary"})
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = l.Edit(99, Changes{Amount: d("5"), FromAccount: "Alice", Description: "salary"})
	assert.ErrorIs(t, err, ErrAmbiguousOrMissingTransaction)

	assertUnchanged(t, l, txs, balance)
}

func TestDelete(t *testing.T) {
	l := newTestLedger(t)
	dep, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	wd, err := l.Add(withdrawal("30", "Bob", "rent"))
	require.NoError(t, err)

	removed, err := l.Delete(wd.ID, "1234")
	require.NoError(t, err)
	assert.Equal(t, wd, removed)
	assert.True(t, l.Balance().Equal(d("100")))

	_, err = l.Delete(dep.ID, "1234")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Balance().IsZero())
}

func TestDelete_WrongPasscode(t *testing.T) {
	l := newTestLedger(t)
	dep, err := l.Add(deposit("100", "Alice", "salary"))
	require.NoError(t, err)
	txs, balance := snapshot(l)

	_, err = l.Delete(dep.ID, "9999")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assertUnchanged(t, l, txs, balance)
}

func TestDelete_WithoutGateFailsClosed(t *testing.T) {
	l, err := New(nil, nil, WithClock(fixedClock))
	require.NoError(t, err)
	dep, err := l.Add(deposit("1", "Alice", "x"))
	require.NoError(t, err)

	_, err = l.Delete(dep.ID, "1234")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, 1, l.Len())
}

func TestDelete_IDsAreNotReused(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add(deposit("1", "A", "x"))
	require.NoError(t, err)
	second, err := l.Add(deposit("1", "A", "x"))
	require.NoError(t, err)

	_, err = l.Delete(second.ID, "1234")
	require.NoError(t, err)

	third, err := l.Add(deposit("1", "A", "x"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestMatch(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add(deposit("10", "A", "same"))
	require.NoError(t, err)
	_, err = l.Add(deposit("10", "B", "same"))
	require.NoError(t, err)
	unique, err := l.Add(deposit("11", "C", "same"))
	require.NoError(t, err)

	got, err := l.Match(Key{Date: "2025-06-01", Type: model.TypeDeposit, Amount: d("11.00"), Description: "same"})
	require.NoError(t, err)
	assert.Equal(t, unique.ID, got.ID)

	_, err = l.Match(Key{Date: "2025-06-01", Type: model.TypeDeposit, Amount: d("10"), Description: "same"})
	assert.ErrorIs(t, err, ErrAmbiguousOrMissingTransaction)

	_, err = l.Match(Key{Date: "2025-06-02", Type: model.TypeDeposit, Amount: d("11"), Description: "same"})
	assert.ErrorIs(t, err, ErrAmbiguousOrMissingTransaction)
}

func TestRunningBalances(t *testing.T) {
	l := newTestLedger(t)
	assert.Empty(t, l.RunningBalances())

	for _, e := range []Entry{
		deposit("100", "Alice", "salary"),
		withdrawal("30", "Bob", "rent"),
		deposit("5.5", "Carol", "refund"),
		withdrawal("75.5", "Dan", "car"),
	} {
		_, err := l.Add(e)
		require.NoError(t, err)
	}

	balances := l.RunningBalances()
	require.Len(t, balances, l.Len())
	want := []string{"100", "70", "75.5", "0"}
	for i, w := range want {
		assert.True(t, balances[i].Equal(d(w)), "row %d: %s != %s", i, balances[i], w)
	}
	assert.True(t, balances[len(balances)-1].Equal(l.Balance()))

	at, err := l.RunningBalanceOf(3)
	require.NoError(t, err)
	assert.True(t, at.Equal(d("75.5")))
}

func TestTotals(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(deposit("100", "Alice", "salary"))
	_, _ = l.Add(deposit("20", "Alice", "gift"))
	_, _ = l.Add(withdrawal("30", "Bob", "rent"))

	deposits, withdrawals := l.Totals()
	assert.True(t, deposits.Equal(d("120")))
	assert.True(t, withdrawals.Equal(d("30")))
}

func TestLoad_MissingDocument(t *testing.T) {
	l, err := Load(stubSource{err: store.ErrNotFound}, stubGate{})
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Balance().IsZero())
}

func TestLoad_RecomputesBalanceAndAssignsIDs(t *testing.T) {
	doc := &store.LedgerDocument{
		Transactions: []model.Transaction{
			{Date: "2024-01-01", Type: model.TypeDeposit, Amount: d("50"), FromAccount: "A", Description: "a"},
			{ID: 7, Date: "2024-01-02", Type: model.TypeWithdrawal, Amount: d("20"), ToAccount: "B", Description: "b"},
			{Date: "2024-01-03", Type: model.TypeDeposit, Amount: d("1.25"), FromAccount: "C", Description: "c"},
		},
		Balance: d("123456"),
	}

	l, err := Load(stubSource{doc: doc}, stubGate{})
	require.NoError(t, err)
	assert.True(t, l.Balance().Equal(d("31.25")))

	txs := l.Transactions()
	assert.Equal(t, []int64{8, 7, 9}, []int64{txs[0].ID, txs[1].ID, txs[2].ID})
}

func TestLoad_Errors(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Load(stubSource{err: boom}, stubGate{})
	assert.ErrorIs(t, err, boom)

	bad := &store.LedgerDocument{Transactions: []model.Transaction{
		{Date: "2024-01-01", Type: "Transfer", Amount: d("1")},
	}}
	_, err = Load(stubSource{doc: bad}, stubGate{})
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	dup := &store.LedgerDocument{Transactions: []model.Transaction{
		{ID: 1, Type: model.TypeDeposit, Amount: d("1")},
		{ID: 1, Type: model.TypeDeposit, Amount: d("2")},
	}}
	_, err = Load(stubSource{doc: dup}, stubGate{})
	assert.ErrorIs(t, err, ErrInvalidTransaction)
}

func TestDocument_ReloadsToSameState(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(deposit("100", "Alice", "salary"))
	_, _ = l.Add(withdrawal("30", "Bob", "rent"))
	_, _ = l.Add(deposit("0.333", "Carol", "odd"))

	doc := l.Document()
	assert.True(t, doc.Balance.Equal(l.Balance()))

	reloaded, err := Load(stubSource{doc: doc}, stubGate{})
	require.NoError(t, err)
	assert.Equal(t, l.Transactions(), reloaded.Transactions())
	assert.True(t, reloaded.Balance().Equal(l.Balance()))
}

func TestDocument_KeepsDeletedIDsRetired(t *testing.T) {
	l := newTestLedger(t)
	_, _ = l.Add(deposit("100", "Alice", "salary"))
	last, err := l.Add(deposit("5", "Bob", "tip"))
	require.NoError(t, err)

	_, err = l.Delete(last.ID, "1234")
	require.NoError(t, err)

	doc := l.Document()
	assert.Equal(t, int64(3), doc.NextID)

	reloaded, err := Load(stubSource{doc: doc}, stubGate{code: "1234"}, WithClock(fixedClock))
	require.NoError(t, err)
	tx, err := reloaded.Add(deposit("1", "Carol", "gift"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), tx.ID)
}
