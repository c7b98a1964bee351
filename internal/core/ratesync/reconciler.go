package ratesync

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateUpsert is one planned write to the rate store.
type RateUpsert struct {
	domain.UpsertCurrencyRate
	ProviderRate float64 // foreign units per one home unit, as fetched
}

// RateFailure records a month/currency pair that could not be planned or written.
type RateFailure struct {
	Month    time.Month
	Currency string
	Err      error
}

// ReconcileStats counts what happened to the pairs of one year.
type ReconcileStats struct {
	SkippedFinalized int
	Failures         []RateFailure
}

// InvertRate turns a provider rate (foreign per home) into the store direction
// (home per foreign).
func InvertRate(rateInHome float64) (float64, error) {
	inverted := 1.0 / rateInHome
	if math.IsInf(inverted, 0) || math.IsNaN(inverted) {
		return 0, fmt.Errorf("%w: 1/%v", apperrors.ErrNonFiniteRate, rateInHome)
	}
	return inverted, nil
}

// PlanUpserts decides the writes for one year without touching the store.
// Pairs whose existing rate is finalized are skipped, pairs that cannot be inverted
// are reported as failures, everything else becomes an upsert keyed on the existing
// row when there is one. Output is ordered by month, then currency.
func PlanUpserts(year int, monthly MonthlyRates, home string, snapshot RateSnapshot) ([]RateUpsert, ReconcileStats) {
	var (
		upserts []RateUpsert
		stats   ReconcileStats
	)

	months := make([]time.Month, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	for _, month := range months {
		rates := monthly[month]
		currencies := make([]string, 0, len(rates))
		for c := range rates {
			currencies = append(currencies, c)
		}
		sort.Strings(currencies)

		for _, foreign := range currencies {
			rateInHome := rates[foreign]
			key := domain.RateKey{Year: year, Month: month, FromCurrency: foreign, ToCurrency: home}
			existing := snapshot.Get(key)

			if IsFinalized(existing, year, month) {
				stats.SkippedFinalized++
				continue
			}

			inverted, err := InvertRate(rateInHome)
			if err != nil {
				stats.Failures = append(stats.Failures, RateFailure{Month: month, Currency: foreign, Err: err})
				continue
			}

			var existingID *string
			if existing != nil {
				id := existing.ID
				existingID = &id
			}
			upserts = append(upserts, RateUpsert{
				UpsertCurrencyRate: domain.UpsertCurrencyRate{
					ExistingID:   existingID,
					FromCurrency: foreign,
					ToCurrency:   home,
					Rate:         decimal.NewFromFloat(inverted),
					Month:        month,
					Year:         year,
				},
				ProviderRate: rateInHome,
			})
		}
	}
	return upserts, stats
}
