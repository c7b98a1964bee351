package providers

import (
	"context"
	"time"
)

// RateQuery asks for daily rates of Symbols expressed against Base, for every
// available day between Start and End inclusive.
type RateQuery struct {
	Start   time.Time
	End     time.Time
	Base    string
	Symbols []string
}

// DailyRates maps a YYYY-MM-DD day to currency -> units of that currency per one
// unit of the base currency.
type DailyRates map[string]map[string]float64

// ExchangeRateProvider is the external time series source of exchange rates.
type ExchangeRateProvider interface {
	// FetchDailyRates performs a single request. End dates past the latest
	// available day are clamped by the provider and are not an error.
	FetchDailyRates(ctx context.Context, query RateQuery) (DailyRates, error)
}
