package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
)

// SyncJob serializes exchange rate sync runs and keeps the last report.
// Triggers from HTTP and from the scheduler share the same guard.
type SyncJob struct {
	BaseService
	syncSvc portssvc.ExchangeRateSyncSvc

	running atomic.Bool

	mu   sync.RWMutex
	last *domain.SyncReport
}

// NewSyncJob wraps a sync service.
func NewSyncJob(syncSvc portssvc.ExchangeRateSyncSvc) *SyncJob {
	return &SyncJob{syncSvc: syncSvc}
}

var _ portssvc.SyncJobSvc = (*SyncJob)(nil)

// TriggerSync runs one sync unless another run is active.
func (j *SyncJob) TriggerSync(ctx context.Context) (*domain.SyncReport, error) {
	if !j.running.CompareAndSwap(false, true) {
		return nil, apperrors.ErrSyncInProgress
	}
	defer j.running.Store(false)

	report, err := j.syncSvc.SyncExchangeRates(ctx)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	j.last = report
	j.mu.Unlock()

	j.LogInfo(ctx, "Exchange rate sync finished",
		slog.String("outcome", string(report.Outcome)),
		slog.Int("processed", report.Processed),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.FinishedAt.Sub(report.StartedAt)))
	return report, nil
}

// LastReport returns the report of the most recent successful run.
func (j *SyncJob) LastReport() (*domain.SyncReport, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.last == nil {
		return nil, false
	}
	return j.last, true
}

// Run triggers a sync on startup when runOnStartup is set, then every interval
// until ctx is done. A non-positive interval disables the schedule.
func (j *SyncJob) Run(ctx context.Context, interval time.Duration, runOnStartup bool) error {
	if runOnStartup {
		j.runScheduled(ctx)
	}
	if interval <= 0 {
		j.LogInfo(ctx, "Scheduled exchange rate sync disabled")
		<-ctx.Done()
		return nil
	}

	j.LogInfo(ctx, "Scheduled exchange rate sync enabled", slog.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.runScheduled(ctx)
		}
	}
}

func (j *SyncJob) runScheduled(ctx context.Context) {
	_, err := j.TriggerSync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrSyncInProgress):
		j.LogInfo(ctx, "Exchange rate sync already running, scheduled run skipped")
	case errors.Is(err, apperrors.ErrHomeCurrencyNotSet):
		j.LogWarn(ctx, "Home currency not set, scheduled exchange rate sync skipped")
	case errors.Is(err, context.Canceled):
	default:
		j.LogError(ctx, err, "Scheduled exchange rate sync failed")
	}
}
