package config

const (
	EnvYCBMBaseURL   = "YCBM_BASE_URL"
	EnvYCBMAccountID = "YCBM_ACCOUNT_ID"
	EnvYCBMProfileID = "YCBM_PROFILE_ID"
	EnvYCBMUsername  = "YCBM_USERNAME"
	EnvYCBMAPIKey    = "YCBM_API_KEY"
	EnvYCBMTimeout   = "YCBM_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"
	EnvTimezone = "TIMEZONE"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
