package models

import "time"

// BalanceSheet is the balance_sheets row. One per year.
type BalanceSheet struct {
	ID        string    `db:"id"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}
