package ratesync

import "time"

// ProviderDateLayout is the calendar day format used as keys in provider responses.
const ProviderDateLayout = "2006-01-02"

// MonthlyRates maps a month to the currency rates that represent it.
type MonthlyRates map[time.Month]map[string]float64

// AggregateMonthly keeps, for each month of year, the currency map of the latest day
// present in daily. A later day replaces the whole map of an earlier one so that a
// month never mixes currencies from two different days. Days of other years and keys
// that are not dates are dropped, as are days without a rate map.
func AggregateMonthly(daily map[string]map[string]float64, year int) MonthlyRates {
	latest := make(map[time.Month]time.Time)
	out := make(MonthlyRates)

	for day, rates := range daily {
		if rates == nil {
			continue
		}
		date, err := time.Parse(ProviderDateLayout, day)
		if err != nil {
			continue
		}
		if date.Year() != year {
			continue
		}
		month := date.Month()
		if prev, ok := latest[month]; ok && !date.After(prev) {
			continue
		}
		latest[month] = date
		out[month] = rates
	}
	return out
}
