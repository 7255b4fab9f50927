package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"daybook/pkg/logger"
)

type Config struct {
	YCBMBaseURL   string
	YCBMAccountID string
	YCBMProfileID string
	YCBMUsername  string
	YCBMAPIKey    string
	YCBMTimeout   time.Duration

	Port     string
	Timezone string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Location *time.Location
	Log      *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		YCBMBaseURL:   getEnvStr(EnvYCBMBaseURL, DefaultYCBMBaseURL),
		YCBMAccountID: getEnvStr(EnvYCBMAccountID, ""),
		YCBMProfileID: getEnvStr(EnvYCBMProfileID, ""),
		YCBMUsername:  getEnvStr(EnvYCBMUsername, ""),
		YCBMAPIKey:    getEnvStr(EnvYCBMAPIKey, ""),
		YCBMTimeout:   getEnvDuration(EnvYCBMTimeout, DefaultYCBMTimeout),

		Port:     getEnvStr(EnvPort, DefaultPort),
		Timezone: getEnvStr(EnvTimezone, DefaultTimezone),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		cfg.Log.Fatal("Unknown timezone", "timezone", cfg.Timezone, "error", err)
	}
	cfg.Location = loc

	cfg.LogConfiguration()
	return cfg
}

// Validate fails fast on a broken configuration. Missing provider
// credentials are fatal here, before any request is served.
func (cfg *Config) Validate() error {
	var errors []string

	if cfg.YCBMBaseURL == "" {
		errors = append(errors, "YCBMBaseURL cannot be empty")
	}
	if cfg.YCBMAccountID == "" {
		errors = append(errors, fmt.Sprintf("YCBMAccountID is required (set %s)", EnvYCBMAccountID))
	}
	if cfg.YCBMProfileID == "" {
		errors = append(errors, fmt.Sprintf("YCBMProfileID is required (set %s)", EnvYCBMProfileID))
	}
	if cfg.YCBMUsername == "" {
		errors = append(errors, fmt.Sprintf("YCBMUsername is required (set %s)", EnvYCBMUsername))
	}
	if cfg.YCBMAPIKey == "" {
		errors = append(errors, fmt.Sprintf("YCBMAPIKey is required (set %s)", EnvYCBMAPIKey))
	}
	if cfg.YCBMTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("YCBMTimeout must be positive, got: %s", cfg.YCBMTimeout))
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"ycbm_base_url", cfg.YCBMBaseURL,
		"ycbm_account_id", cfg.YCBMAccountID,
		"ycbm_profile_id", cfg.YCBMProfileID,
		"ycbm_username", cfg.YCBMUsername,
		"ycbm_api_key_set", cfg.YCBMAPIKey != "",
		"ycbm_timeout", cfg.YCBMTimeout,
		"port", cfg.Port,
		"timezone", cfg.Timezone,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
