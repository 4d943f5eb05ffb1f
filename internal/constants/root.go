package constants

const (
	AppName            = "wellnest"
	DefaultKeyringUser = "database-connection"
	OpenAIKeyringUser  = "openai-api-key"
	DefaultConfigPath  = "~/.config/wellnest/wellnest.db"
	Version            = "v0.3.0"

	// StorageKey is the key the data blob is stored under in every provider.
	StorageKey  = "wellnest-data"
	DataVersion = 1

	// DateFormat is the calendar day identifier format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the time of day format (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellnest-"

	// Lock constants
	LockfileName = "wellnest.lock"

	// Analytics windows, in days
	WeeklyWindowDays    = 7
	MoodTrendDays       = 14
	StreakHorizonDays   = 30
	StreakThreshold     = 0.5
	UrgentDeadlineDays  = 7
	DefaultGoalLeadDays = 30

	// DefaultPrompt is reported when no entry carries a writing prompt.
	DefaultPrompt = "free writing"
	// DefaultActiveHour is reported when there are no entries.
	DefaultActiveHour = 12
)
