package services

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/dto"
)

// BalanceSheetSvcFacade defines operations on balance sheets
type BalanceSheetSvcFacade interface {
	ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error)
	CreateBalanceSheet(ctx context.Context, req dto.CreateBalanceSheetRequest) (*domain.BalanceSheet, error)
	DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error
}
