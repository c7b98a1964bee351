package ratesync

import "github.com/SscSPs/networth_backend/internal/core/domain"

// RateSnapshot is a read-only index of the rates that existed when a run started.
// It is built once and never refreshed mid-run.
type RateSnapshot struct {
	rates map[domain.RateKey]domain.CurrencyRate
}

// NewRateSnapshot indexes rates by their composite key. When the store returns
// several rows for one key the last one wins.
func NewRateSnapshot(rates []domain.CurrencyRate) RateSnapshot {
	m := make(map[domain.RateKey]domain.CurrencyRate, len(rates))
	for _, r := range rates {
		m[r.Key()] = r
	}
	return RateSnapshot{rates: m}
}

// Get returns a copy of the rate stored under key, or nil.
func (s RateSnapshot) Get(key domain.RateKey) *domain.CurrencyRate {
	r, ok := s.rates[key]
	if !ok {
		return nil
	}
	return &r
}

// Len returns the number of indexed rates.
func (s RateSnapshot) Len() int {
	return len(s.rates)
}
