// Package app wires the screening service together and manages its
// lifecycle.
//
// NewApplication resolves the configured directories, builds the logger and
// OpenTelemetry providers, then the exporter, services, and the chi router:
//
//	RequestID → RealIP → error/recovery → OTel → security headers → CORS → rate limit
//
// Screening routes run under the request timeout; /api routes under the
// read timeout. /metrics serves the Prometheus registry.
//
// Run listens on the configured address and serves until the context is
// cancelled or the process receives SIGINT or SIGTERM. The server and the
// shutdown watcher share an errgroup, so a listener failure also triggers
// the graceful shutdown. Initialization errors are returned, never fatal;
// main decides the exit code.
package app
