package http

import (
	"errors"
	"sync"
	"time"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/monitoring"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	createCreated  = "created"
	createConflict = "conflict"
	createInvalid  = "invalid"
)

// RegistryCounter reports current registry sizes
type RegistryCounter interface {
	Counts() (repositories, packages int)
}

// HandlerMetrics wraps handlers with metrics tracking
type HandlerMetrics struct {
	metrics *monitoring.Metrics
	counter RegistryCounter

	// serializes count reads with gauge writes so the gauges end on the latest value
	syncMu sync.Mutex
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics, counter RegistryCounter) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics, counter: counter}
}

// Track starts timing a service operation; call the returned func with the outcome
func (hm *HandlerMetrics) Track(service, operation string) func(status string) {
	timer := monitoring.NewTimer(hm.metrics, service, operation)
	return timer.Stop
}

// SyncRegistry refreshes the repository and package gauges from the store
func (hm *HandlerMetrics) SyncRegistry() {
	hm.syncMu.Lock()
	defer hm.syncMu.Unlock()

	repos, pkgs := hm.counter.Counts()
	hm.metrics.SetRegistrySize(repos, pkgs)
}

// PackageUpload counts an accepted upload
func (hm *HandlerMetrics) PackageUpload(repository string) {
	hm.metrics.RecordPackageUpload(repository)
}

// RepositoryCreate counts a repository create attempt by outcome
func (hm *HandlerMetrics) RepositoryCreate(result string) {
	hm.metrics.RecordRepositoryCreate(result)
}

// Summary combines request totals with current registry sizes
func (hm *HandlerMetrics) Summary() types.MetricsSummary {
	snap := hm.metrics.Snapshot()
	repos, pkgs := hm.counter.Counts()

	summary := types.MetricsSummary{
		Timestamp:        time.Now(),
		TotalRequests:    snap.TotalRequests,
		AverageLatencyMs: snap.AvgDuration * 1000,
		UptimeSeconds:    snap.Uptime,
		Repositories:     repos,
		Packages:         pkgs,
	}
	if snap.TotalRequests > 0 {
		summary.ErrorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}
	return summary
}

func createOutcome(err error) string {
	if errors.Is(err, registry.ErrConflict) {
		return createConflict
	}
	return createInvalid
}
