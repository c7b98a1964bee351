package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is the currency_rates row. Unique on (year, month, from_currency, to_currency).
type CurrencyRate struct {
	ID           string          `db:"id"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	Rate         decimal.Decimal `db:"rate"` // NUMERIC
	Month        int16           `db:"month"`
	Year         int             `db:"year"`
	RecordedAt   time.Time       `db:"recorded_at"`
}
