package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is the monthly conversion rate between two currencies.
// One unit of FromCurrency equals Rate units of ToCurrency.
type CurrencyRate struct {
	ID           string          `json:"id"`           // Primary Key (UUID)
	FromCurrency string          `json:"fromCurrency"` // e.g. "EUR"
	ToCurrency   string          `json:"toCurrency"`   // the home currency
	Rate         decimal.Decimal `json:"rate"`
	Month        time.Month      `json:"month"` // 1..12
	Year         int             `json:"year"`
	RecordedAt   time.Time       `json:"recordedAt"` // set on every write
}

// Key returns the composite key a live rate is unique on.
func (r CurrencyRate) Key() RateKey {
	return RateKey{Year: r.Year, Month: r.Month, FromCurrency: r.FromCurrency, ToCurrency: r.ToCurrency}
}

// RateKey identifies the single live rate for a currency pair in a given month.
type RateKey struct {
	Year         int
	Month        time.Month
	FromCurrency string
	ToCurrency   string
}

// UpsertCurrencyRate is the write model for the rate store. When ExistingID is set the
// row with that ID is updated in place, otherwise a new row is inserted.
type UpsertCurrencyRate struct {
	ExistingID   *string
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
	Month        time.Month
	Year         int
}
