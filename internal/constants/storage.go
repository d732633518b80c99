package constants

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

const (
	DocTransactions = "transactions"
	DocPasscode     = "passcode"
)

const (
	AppName         = "statement"
	EnvPrefix       = "STATEMENT"
	DefaultCurrency = "SAR"
	CentsPerUnit    = 100
)
