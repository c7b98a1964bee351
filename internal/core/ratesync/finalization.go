// Package ratesync holds the pure pieces of the exchange rate sync: deciding which
// months are finalized, which date window to request, how daily provider rates
// collapse into one monthly rate, and which rows to write back.
package ratesync

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// LastDayOf returns midnight UTC of the last calendar day of the given month.
func LastDayOf(year int, month time.Month) time.Time {
	// Day 0 of the following month normalises to the last day of this one,
	// including December rolling into January of year+1.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// IsFinalized reports whether rate was recorded on a calendar day strictly after
// the given month closed. A missing rate is never finalized.
func IsFinalized(rate *domain.CurrencyRate, year int, month time.Month) bool {
	if rate == nil {
		return false
	}
	return dateOf(rate.RecordedAt).After(LastDayOf(year, month))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
