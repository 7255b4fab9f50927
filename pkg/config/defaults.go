package config

import "time"

const (
	DefaultYCBMBaseURL = "https://api.youcanbook.me/v1"
	DefaultYCBMTimeout = 5 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"
	DefaultTimezone = "Local"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 15 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
