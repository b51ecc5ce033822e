package config

import "time"

// Application identity
const (
	AppName    = "acctfilter"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. ACCTFILTER_SERVER_PORT.
	EnvPrefix = "ACCTFILTER"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultOutputDir       = "saved_outputs"
	DefaultLogsDir         = "logs"
	DefaultMaxUploadBytes  = 32 << 20
	DefaultMemoryBytes     = 8 << 20
	DefaultReadTimeout     = 60 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultRequestTimeout  = 90 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRateLimitRPS    = 20
	DefaultRateLimitBurst  = 40
)
