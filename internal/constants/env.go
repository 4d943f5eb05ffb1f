package constants

const (
	EnvDBConnection   = "WELLNEST_DB_CONNECTION"
	EnvConfig         = "WELLNEST_CONFIG"
	EnvTimezone       = "WELLNEST_TIMEZONE"
	EnvDebug          = "WELLNEST_DEBUG"
	EnvDotEnv         = "WELLNEST_DOTENV"
	EnvSentimentModel = "WELLNEST_SENTIMENT_MODEL"
	EnvOpenAIKey      = "OPENAI_API_KEY"
)
