package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/google/uuid"
)

type balanceSheetService struct {
	BaseService
	sheetRepo portsrepo.BalanceSheetRepositoryFacade
}

// NewBalanceSheetService creates a new balance sheet service
func NewBalanceSheetService(repo portsrepo.BalanceSheetRepositoryFacade) portssvc.BalanceSheetSvcFacade {
	return &balanceSheetService{sheetRepo: repo}
}

var _ portssvc.BalanceSheetSvcFacade = (*balanceSheetService)(nil)

func (s *balanceSheetService) ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error) {
	sheets, err := s.sheetRepo.ListBalanceSheets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance sheets")
		return nil, fmt.Errorf("failed to list balance sheets: %w", err)
	}
	if sheets == nil {
		return []domain.BalanceSheet{}, nil
	}
	return sheets, nil
}

func (s *balanceSheetService) CreateBalanceSheet(ctx context.Context, req dto.CreateBalanceSheetRequest) (*domain.BalanceSheet, error) {
	sheet := domain.BalanceSheet{
		ID:        uuid.NewString(),
		Year:      req.Year,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sheetRepo.SaveBalanceSheet(ctx, sheet); err != nil {
		s.LogError(ctx, err, "Failed to save balance sheet", slog.Int("year", req.Year))
		return nil, fmt.Errorf("failed to create balance sheet for %d: %w", req.Year, err)
	}
	s.LogInfo(ctx, "Balance sheet created", slog.String("balance_sheet_id", sheet.ID), slog.Int("year", sheet.Year))
	return &sheet, nil
}

func (s *balanceSheetService) DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error {
	if err := s.sheetRepo.DeleteBalanceSheet(ctx, balanceSheetID); err != nil {
		s.LogError(ctx, err, "Failed to delete balance sheet", slog.String("balance_sheet_id", balanceSheetID))
		return fmt.Errorf("failed to delete balance sheet %s: %w", balanceSheetID, err)
	}
	s.LogInfo(ctx, "Balance sheet deleted", slog.String("balance_sheet_id", balanceSheetID))
	return nil
}
