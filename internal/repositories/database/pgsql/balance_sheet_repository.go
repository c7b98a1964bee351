package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	"github.com/SscSPs/networth_backend/internal/models"
	"github.com/SscSPs/networth_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceSheetRepository struct {
	BaseRepository
}

func newPgxBalanceSheetRepository(pool *pgxpool.Pool) *PgxBalanceSheetRepository {
	return &PgxBalanceSheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceSheetRepositoryFacade = (*PgxBalanceSheetRepository)(nil)

// ListBalanceSheets returns all balance sheets, newest year first.
func (r *PgxBalanceSheetRepository) ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, year, created_at FROM balance_sheets ORDER BY year DESC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list balance sheets", err)
	}
	defer rows.Close()

	var sheets []domain.BalanceSheet
	for rows.Next() {
		var m models.BalanceSheet
		if err := rows.Scan(&m.ID, &m.Year, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance sheet", err)
		}
		sheets = append(sheets, mapping.ToDomainBalanceSheet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance sheets", err)
	}
	return sheets, nil
}

// SaveBalanceSheet inserts a balance sheet. Years are unique.
func (r *PgxBalanceSheetRepository) SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	m := mapping.ToModelBalanceSheet(sheet)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO balance_sheets (id, year, created_at) VALUES ($1, $2, $3)`,
		m.ID, m.Year, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: balance sheet for year %d already exists", apperrors.ErrDuplicate, m.Year)
		}
		return apperrors.NewAppError(500, "failed to save balance sheet", err)
	}
	return nil
}

// DeleteBalanceSheet removes a balance sheet. Stored rates for its year are kept.
func (r *PgxBalanceSheetRepository) DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM balance_sheets WHERE id = $1`, balanceSheetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete balance sheet", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("balance sheet with ID " + balanceSheetID + " not found")
	}
	return nil
}
