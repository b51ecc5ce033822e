// Package config loads the service configuration.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. Default()
//  2. config.yaml or configs/config.yaml, if present
//  3. ACCTFILTER_* environment variables
//
// Environment variable names follow the struct nesting:
//
//	ACCTFILTER_SERVER_PORT=9000
//	ACCTFILTER_PATHS_OUTPUT_DIR=/var/lib/acctfilter/out
//	ACCTFILTER_UPLOAD_MAX_BYTES=67108864
//	ACCTFILTER_SECURITY_RATE_LIMIT_RPS=5
//	ACCTFILTER_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := cfg.ResolvePaths("")
package config
