package services

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// ExchangeRateSyncSvc performs one exchange rate synchronization run.
// Runs must not overlap; use SyncJobSvc to serialize them.
type ExchangeRateSyncSvc interface {
	// SyncExchangeRates brings the monthly rate store up to date with the provider.
	// Only a missing home currency or an unreadable collaborator fails the run;
	// per-year and per-rate problems are reported in the returned SyncReport.
	SyncExchangeRates(ctx context.Context) (*domain.SyncReport, error)
}

// SyncJobSvc serializes sync runs, whether triggered by a request or a timer.
type SyncJobSvc interface {
	// TriggerSync runs a sync now, or fails with apperrors.ErrSyncInProgress.
	TriggerSync(ctx context.Context) (*domain.SyncReport, error)

	// LastReport returns the report of the last successful run, if any.
	LastReport() (*domain.SyncReport, bool)
}
