package ratesync_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/core/ratesync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertRate(t *testing.T) {
	inv, err := ratesync.InvertRate(0.92)
	require.NoError(t, err)
	assert.InDelta(t, 1.0869565, inv, 1e-6)

	for _, bad := range []float64{0, math.Copysign(0, -1), math.NaN()} {
		_, err := ratesync.InvertRate(bad)
		assert.ErrorIs(t, err, apperrors.ErrNonFiniteRate)
	}
}

func TestPlanUpserts_InsertsAndUpdates(t *testing.T) {
	existing := provisionalRate(2024, time.February, "EUR", "USD")
	snapshot := ratesync.NewRateSnapshot([]domain.CurrencyRate{existing})
	monthly := ratesync.MonthlyRates{
		time.February: {"EUR": 0.8},
		time.January:  {"GBP": 0.5, "EUR": 0.9},
	}

	upserts, stats := ratesync.PlanUpserts(2024, monthly, "USD", snapshot)

	require.Len(t, upserts, 3)
	assert.Zero(t, stats.SkippedFinalized)
	assert.Empty(t, stats.Failures)

	// ordered by month then currency
	assert.Equal(t, time.January, upserts[0].Month)
	assert.Equal(t, "EUR", upserts[0].FromCurrency)
	assert.Equal(t, time.January, upserts[1].Month)
	assert.Equal(t, "GBP", upserts[1].FromCurrency)
	assert.Nil(t, upserts[0].ExistingID)

	feb := upserts[2]
	require.NotNil(t, feb.ExistingID)
	assert.Equal(t, existing.ID, *feb.ExistingID)
	assert.Equal(t, "USD", feb.ToCurrency)
	assert.Equal(t, 2024, feb.Year)
	assert.InDelta(t, 1.25, feb.Rate.InexactFloat64(), 1e-9)
	assert.Equal(t, 0.8, feb.ProviderRate)
}

func TestPlanUpserts_NeverTouchesFinalizedRates(t *testing.T) {
	snapshot := ratesync.NewRateSnapshot([]domain.CurrencyRate{
		finalizedRate(2024, time.March, "EUR", "USD"),
	})
	monthly := ratesync.MonthlyRates{time.March: {"EUR": 0.5, "GBP": 0.8}}

	upserts, stats := ratesync.PlanUpserts(2024, monthly, "USD", snapshot)

	require.Len(t, upserts, 1)
	assert.Equal(t, "GBP", upserts[0].FromCurrency)
	assert.Equal(t, 1, stats.SkippedFinalized)
}

func TestPlanUpserts_ZeroRateIsAFailure(t *testing.T) {
	monthly := ratesync.MonthlyRates{time.June: {"EUR": 0, "GBP": 0.8}}

	upserts, stats := ratesync.PlanUpserts(2024, monthly, "USD", ratesync.NewRateSnapshot(nil))

	require.Len(t, upserts, 1)
	assert.Equal(t, "GBP", upserts[0].FromCurrency)
	require.Len(t, stats.Failures, 1)
	assert.Equal(t, "EUR", stats.Failures[0].Currency)
	assert.Equal(t, time.June, stats.Failures[0].Month)
	assert.ErrorIs(t, stats.Failures[0].Err, apperrors.ErrNonFiniteRate)
}

func TestPlanUpserts_LatestDayScenario(t *testing.T) {
	daily := map[string]map[string]float64{
		"2024-03-10": {"EUR": 0.90},
		"2024-03-25": {"EUR": 0.92},
	}

	upserts, _ := ratesync.PlanUpserts(2024, ratesync.AggregateMonthly(daily, 2024), "USD", ratesync.NewRateSnapshot(nil))

	require.Len(t, upserts, 1)
	assert.Equal(t, "EUR", upserts[0].FromCurrency)
	assert.Equal(t, "USD", upserts[0].ToCurrency)
	assert.Equal(t, time.March, upserts[0].Month)
	assert.InDelta(t, 1/0.92, upserts[0].Rate.InexactFloat64(), 1e-9)
}
