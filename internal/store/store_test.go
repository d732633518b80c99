package store

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMigrations(t *testing.T) fstest.MapFS {
	t.Helper()
	up, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_create_documents.up.sql"))
	require.NoError(t, err)
	down, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_create_documents.down.sql"))
	require.NoError(t, err)

	return fstest.MapFS{
		"migrations/000001_create_documents.up.sql":   {Data: up},
		"migrations/000001_create_documents.down.sql": {Data: down},
	}
}

func openTestStores(t *testing.T) map[string]*Store {
	t.Helper()
	dir := t.TempDir()
	migrations := testMigrations(t)

	paths := map[string]string{
		constants.DriverFile:   filepath.Join(dir, "data"),
		constants.DriverSQLite: filepath.Join(dir, "statement.db"),
		constants.DriverBolt:   filepath.Join(dir, "statement.bolt"),
	}

	stores := make(map[string]*Store, len(paths))
	for driver, path := range paths {
		s, err := NewStore(driver, path, migrations)
		require.NoError(t, err, driver)
		t.Cleanup(func() { _ = s.Close() })
		stores[driver] = s
	}
	return stores
}

func sampleDocument() *LedgerDocument {
	return &LedgerDocument{
		Transactions: []model.Transaction{
			{
				ID:          1,
				Date:        "2025-03-01",
				Type:        model.TypeDeposit,
				Amount:      decimal.RequireFromString("100.125"),
				FromAccount: "Alice",
				Description: "salary",
			},
			{
				ID:          2,
				Date:        "2025-03-02",
				Type:        model.TypeWithdrawal,
				Amount:      decimal.RequireFromString("30"),
				ToAccount:   "Bob",
				Description: "rent",
			},
		},
		Balance: decimal.RequireFromString("70.125"),
	}
}

func TestStore_MissingDocuments(t *testing.T) {
	for driver, s := range openTestStores(t) {
		t.Run(driver, func(t *testing.T) {
			_, err := s.LoadLedger()
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = s.LoadPasscode()
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_LedgerRoundTrip(t *testing.T) {
	for driver, s := range openTestStores(t) {
		t.Run(driver, func(t *testing.T) {
			want := sampleDocument()
			require.NoError(t, s.SaveLedger(want))

			got, err := s.LoadLedger()
			require.NoError(t, err)
			require.Len(t, got.Transactions, 2)
			for i := range want.Transactions {
				w, g := want.Transactions[i], got.Transactions[i]
				assert.Equal(t, w.ID, g.ID)
				assert.Equal(t, w.Date, g.Date)
				assert.Equal(t, w.Type, g.Type)
				assert.True(t, w.Amount.Equal(g.Amount), "amount %s != %s", w.Amount, g.Amount)
				assert.Equal(t, w.FromAccount, g.FromAccount)
				assert.Equal(t, w.ToAccount, g.ToAccount)
				assert.Equal(t, w.Description, g.Description)
			}

			// A second save replaces the whole document.
			require.NoError(t, s.SaveLedger(&LedgerDocument{}))
			got, err = s.LoadLedger()
			require.NoError(t, err)
			assert.Empty(t, got.Transactions)
		})
	}
}

func TestStore_PasscodeRoundTrip(t *testing.T) {
	for driver, s := range openTestStores(t) {
		t.Run(driver, func(t *testing.T) {
			require.NoError(t, s.SavePasscode("1234"))
			code, err := s.LoadPasscode()
			require.NoError(t, err)
			assert.Equal(t, "1234", code)

			require.NoError(t, s.SavePasscode("0042"))
			code, err = s.LoadPasscode()
			require.NoError(t, err)
			assert.Equal(t, "0042", code)
		})
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.db")
	migrations := testMigrations(t)

	s, err := NewStore(constants.DriverSQLite, path, migrations)
	require.NoError(t, err)
	require.NoError(t, s.SaveLedger(sampleDocument()))
	require.NoError(t, s.Close())

	s, err = NewStore(constants.DriverSQLite, path, migrations)
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.LoadLedger()
	require.NoError(t, err)
	assert.Len(t, doc.Transactions, 2)
}

func TestFileBackend_ReadsOriginalFormat(t *testing.T) {
	dir := t.TempDir()
	legacy := `{
    "transactions": [
        {"date": "2024-01-05", "type": "Deposit", "amount": 250.5, "from_account": "Employer", "to_account": "", "description": "pay"}
    ],
    "balance": 999
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte(legacy), 0644))

	s, err := NewStore(constants.DriverFile, dir, nil)
	require.NoError(t, err)

	doc, err := s.LoadLedger()
	require.NoError(t, err)
	require.Len(t, doc.Transactions, 1)
	assert.Equal(t, int64(0), doc.Transactions[0].ID)
	assert.True(t, doc.Transactions[0].Amount.Equal(decimal.RequireFromString("250.5")))
}

func TestFileBackend_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(constants.DriverFile, dir, nil)
	require.NoError(t, err)

	require.NoError(t, s.SaveLedger(sampleDocument()))
	require.NoError(t, s.SavePasscode("1234"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"transactions.json", "passcode.json"}, names)
}

func TestFileBackend_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{not json"), 0644))

	s, err := NewStore(constants.DriverFile, dir, nil)
	require.NoError(t, err)

	_, err = s.LoadLedger()
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	_, err := NewStore("postgres", t.TempDir(), nil)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
