package cmd

// Config carries all runtime settings, assembled from the environment in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// TelegramAPIURL is the Bot API base URL; overridable for local stubs.
	TelegramAPIURL   string
	TelegramBotToken string

	// AppraiserAllowList is a comma-separated list of Telegram ids permitted
	// to hold the APPRAISER role.
	AppraiserAllowList string

	// TelegramPlatformOnly rejects requests not relayed by Telegram when true.
	TelegramPlatformOnly bool
}
