package models

import (
	"database/sql"
	"time"
)

// AccountType mirrors the account_type column values.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
)

// Account is the accounts row.
type Account struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	AccountType AccountType    `db:"account_type"`
	SubCategory sql.NullString `db:"sub_category"` // Nullable
	Currency    string         `db:"currency"`
	SortOrder   int            `db:"sort_order"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
}
