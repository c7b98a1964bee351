package domain

import "time"

// BalanceSheet groups a year's monthly account entries. Its year is what makes
// the exchange rate sync care about that year.
type BalanceSheet struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}
