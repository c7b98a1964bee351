package domain

import "time"

// UserSettings holds the single user's preferences. Only the first row is used.
type UserSettings struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	HomeCurrency string    `json:"homeCurrency"` // ISO 4217 code, e.g. "USD"
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
