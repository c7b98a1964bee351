package models

import "time"

// UserSettings is the user_settings row.
type UserSettings struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	HomeCurrency string    `db:"home_currency"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
