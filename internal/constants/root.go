package constants

const (
	AppName       = "growthbook"
	AppIdentifier = "com.julianstephens.growthbook"
	Version       = "v0.1.0"

	// DBFileName is the fixed name of the database file inside the data directory
	DBFileName = "core.sqlite3"

	// DataDirEnv overrides the platform data directory when set
	DataDirEnv = "GROWTHBOOK_DATA_DIR"

	// DateFormat is the page key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Happiness scale. The store accepts any integer; input surfaces clamp to this range.
	DefaultHappiness = 5
	MinHappiness     = 1
	MaxHappiness     = 10

	// BusyTimeoutMs is how long a connection waits on SQLite's file lock before failing
	BusyTimeoutMs = 5000

	// Bridge command names understood by `growthbook serve`
	CmdGetDailyPage  = "get_daily_page"
	CmdSaveDailyPage = "save_daily_page"
	CmdGetDBPath     = "get_db_path"
)
