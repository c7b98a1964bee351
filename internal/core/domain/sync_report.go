package domain

import "time"

// SyncOutcome summarises how a sync run ended.
type SyncOutcome string

const (
	SyncCompleted     SyncOutcome = "completed"
	SyncNothingToSync SyncOutcome = "nothing_to_sync"
)

// YearSyncStatus describes what happened to a single year during a run.
type YearSyncStatus string

const (
	YearSkippedFinalized YearSyncStatus = "skipped_finalized"
	YearFetchFailed      YearSyncStatus = "fetch_failed"
	YearSynced           YearSyncStatus = "synced"
)

// YearSyncResult holds the per-year counts of a sync run.
type YearSyncResult struct {
	Year             int            `json:"year"`
	Status           YearSyncStatus `json:"status"`
	StartMonth       time.Month     `json:"startMonth,omitempty"`
	Upserted         int            `json:"upserted"`
	SkippedFinalized int            `json:"skippedFinalized"`
	Failed           int            `json:"failed"`
	Error            string         `json:"error,omitempty"`
}

// SyncReport is returned by every successful run. Partial failures are reported
// here instead of as an error.
type SyncReport struct {
	Outcome      SyncOutcome      `json:"outcome"`
	HomeCurrency string           `json:"homeCurrency,omitempty"`
	Currencies   []string         `json:"currencies,omitempty"`
	Years        []YearSyncResult `json:"years,omitempty"`
	Processed    int              `json:"processed"`
	Skipped      int              `json:"skipped"`
	Failed       int              `json:"failed"`
	StartedAt    time.Time        `json:"startedAt"`
	FinishedAt   time.Time        `json:"finishedAt"`
}

// AddYear appends a year result and folds its counts into the run totals.
// A skipped year counts once as skipped, a failed fetch once as failed.
func (r *SyncReport) AddYear(y YearSyncResult) {
	r.Years = append(r.Years, y)
	r.Processed += y.Upserted
	r.Skipped += y.SkippedFinalized
	r.Failed += y.Failed
	switch y.Status {
	case YearSkippedFinalized:
		r.Skipped++
	case YearFetchFailed:
		r.Failed++
	}
}
