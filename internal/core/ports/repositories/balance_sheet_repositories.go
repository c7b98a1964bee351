package repositories

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// BalanceSheetReader defines read operations for balance sheets
type BalanceSheetReader interface {
	// ListBalanceSheets returns all balance sheets, newest year first.
	ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error)
}

// BalanceSheetWriter defines write operations for balance sheets
type BalanceSheetWriter interface {
	// SaveBalanceSheet persists a new balance sheet. A second sheet for the same
	// year fails with apperrors.ErrDuplicate.
	SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error

	// DeleteBalanceSheet removes a balance sheet by its identifier.
	DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error
}

// BalanceSheetRepositoryFacade combines all balance sheet repository interfaces
type BalanceSheetRepositoryFacade interface {
	BalanceSheetReader
	BalanceSheetWriter
}
