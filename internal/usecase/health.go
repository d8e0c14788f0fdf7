package usecase

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/textileoem/platform/internal/config"
	"github.com/textileoem/platform/internal/domain/repository"
)

// Service health states.
const (
	HealthOK       = "OK"
	HealthDegraded = "DEGRADED"

	serviceOK            = "ok"
	serviceError         = "error"
	serviceNotConfigured = "not_configured"
)

// HealthStatus is the shallow health report.
type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Uptime      float64           `json:"uptime"`
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Services    map[string]string `json:"services"`
}

// ServiceProbe is one timed dependency check in the detailed report.
type ServiceProbe struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time"`
	LastCheck    time.Time `json:"last_check"`
}

// DetailedHealthStatus extends the shallow report with timed probes and
// process resource usage.
type DetailedHealthStatus struct {
	Status      string                  `json:"status"`
	Timestamp   time.Time               `json:"timestamp"`
	Uptime      float64                 `json:"uptime"`
	Environment string                  `json:"environment"`
	Version     string                  `json:"version"`
	Memory      MemoryUsage             `json:"memory"`
	Goroutines  int                     `json:"goroutines"`
	Services    map[string]ServiceProbe `json:"services"`
}

// MemoryUsage reports process heap statistics in bytes.
type MemoryUsage struct {
	Used  uint64 `json:"used"`
	Total uint64 `json:"total"`
	Sys   uint64 `json:"sys"`
	NumGC uint32 `json:"num_gc"`
}

// HealthUseCase assembles health reports. The database is probed live; the
// payment and messaging providers are checked for configuration presence
// only, to avoid burning provider quota on every probe.
type HealthUseCase struct {
	storage repository.Factory
	cfg     *config.Config
	started time.Time
	logger  *slog.Logger
}

// NewHealthUseCase constructs HealthUseCase.
func NewHealthUseCase(storage repository.Factory, cfg *config.Config, logger *slog.Logger) *HealthUseCase {
	return &HealthUseCase{storage: storage, cfg: cfg, started: time.Now(), logger: logger}
}

// Check builds the shallow report. Any failing dependency degrades the
// overall status.
func (u *HealthUseCase) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:      HealthOK,
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(u.started).Seconds(),
		Environment: u.cfg.Env,
		Version:     u.cfg.Version,
		Services:    make(map[string]string, 3),
	}

	if err := u.storage.Ping(ctx); err != nil {
		status.Services["database"] = serviceError
		status.Status = HealthDegraded
		u.logger.Error("database health check failed", slog.Any("error", err))
	} else {
		status.Services["database"] = serviceOK
	}

	status.Services["razorpay"] = configuredState(u.cfg.RazorpayKeyID != "" && u.cfg.RazorpayKeySecret != "")
	status.Services["twilio"] = configuredState(u.cfg.TwilioAccountSID != "" && u.cfg.TwilioAuthToken != "")
	for _, state := range status.Services {
		if state != serviceOK {
			status.Status = HealthDegraded
		}
	}
	return status
}

// CheckDetailed builds the deep report with a timed database probe and
// runtime memory statistics.
func (u *HealthUseCase) CheckDetailed(ctx context.Context) *DetailedHealthStatus {
	now := time.Now().UTC()
	status := &DetailedHealthStatus{
		Status:      HealthOK,
		Timestamp:   now,
		Uptime:      time.Since(u.started).Seconds(),
		Environment: u.cfg.Env,
		Version:     u.cfg.Version,
		Goroutines:  runtime.NumGoroutine(),
		Services:    make(map[string]ServiceProbe, 3),
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	status.Memory = MemoryUsage{
		Used:  mem.HeapAlloc,
		Total: mem.HeapSys,
		Sys:   mem.Sys,
		NumGC: mem.NumGC,
	}

	dbStart := time.Now()
	dbErr := u.storage.Ping(ctx)
	probe := ServiceProbe{
		Status:       serviceOK,
		ResponseTime: time.Since(dbStart).Milliseconds(),
		LastCheck:    time.Now().UTC(),
	}
	if dbErr != nil {
		probe.Status = serviceError
		status.Status = HealthDegraded
		u.logger.Error("database health check failed", slog.Any("error", dbErr))
	}
	status.Services["database"] = probe

	status.Services["razorpay"] = configProbe(u.cfg.RazorpayKeyID != "" && u.cfg.RazorpayKeySecret != "")
	status.Services["twilio"] = configProbe(u.cfg.TwilioAccountSID != "" && u.cfg.TwilioAuthToken != "")
	for _, p := range status.Services {
		if p.Status != serviceOK {
			status.Status = HealthDegraded
		}
	}
	return status
}

func configuredState(configured bool) string {
	if configured {
		return serviceOK
	}
	return serviceNotConfigured
}

func configProbe(configured bool) ServiceProbe {
	return ServiceProbe{
		Status:    configuredState(configured),
		LastCheck: time.Now().UTC(),
	}
}
