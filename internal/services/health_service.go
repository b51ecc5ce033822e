package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"acctfilter/internal/analysis"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	outputDir string
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a health service. outputDir is the directory
// results are saved to; readiness requires it to be writable.
func NewHealthService(version, buildTime, outputDir string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		outputDir: outputDir,
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	ready := hs.ReadinessCheck(ctx)
	status := "ok"
	if ready.Status != "ready" {
		status = "degraded"
	}
	hs.logger.DebugContext(ctx, "health check", slog.String("status", status))

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Version:   hs.version,
		Services:  ready.Services,
	}
}

// ReadinessCheck reports whether results can be saved
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services: map[string]interface{}{
			"output": hs.checkOutputDir(),
		},
	}
	for _, svc := range status.Services {
		if sh, ok := svc.(ServiceHealth); ok && sh.Status != "ready" {
			status.Status = "not_ready"
			break
		}
	}
	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information and the operations served
func (hs *HealthService) Version() map[string]interface{} {
	ops := make([]string, 0, len(analysis.Operations()))
	for _, op := range analysis.Operations() {
		ops = append(ops, string(op))
	}

	result := map[string]interface{}{
		"version":      hs.version,
		"go_version":   runtime.Version(),
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
		"operations":   ops,
	}
	if hs.buildTime != "" {
		result["build_time"] = hs.buildTime
	}
	return result
}

// checkOutputDir verifies the output directory exists and accepts new files
func (hs *HealthService) checkOutputDir() ServiceHealth {
	info, err := os.Stat(hs.outputDir)
	if err != nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Output directory not found: %s", hs.outputDir),
		}
	}
	if !info.IsDir() {
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Output path is not a directory: %s", hs.outputDir),
		}
	}

	probe, err := os.CreateTemp(hs.outputDir, ".health-*")
	if err != nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("Cannot write to output directory: %v", err),
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return ServiceHealth{Status: "ready", Message: "Output directory is writable"}
}
