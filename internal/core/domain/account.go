package domain

import "time"

// AccountType defines whether an account adds to or subtracts from net worth.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
)

// Account represents a tracked asset or liability held in a single currency.
type Account struct {
	ID          string      `json:"id"`          // Primary Key (UUID)
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET or LIABILITY
	SubCategory *string     `json:"subCategory"` // Nullable grouping, e.g. "cash"
	Currency    string      `json:"currency"`    // ISO 4217 code
	SortOrder   int         `json:"sortOrder"`
	IsArchived  bool        `json:"isArchived"` // archived accounts still count for rate sync
	CreatedAt   time.Time   `json:"createdAt"`
}
