package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	"github.com/SscSPs/networth_backend/internal/models"
	"github.com/SscSPs/networth_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyRateColumns = `id, from_currency, to_currency, rate, month, year, recorded_at`

// PgxCurrencyRateRepository implements the currency rate repository ports using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

func newPgxCurrencyRateRepository(pool *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRateRepositoryWithTx = (*PgxCurrencyRateRepository)(nil)

func scanCurrencyRate(row pgx.Row) (models.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(&m.ID, &m.FromCurrency, &m.ToCurrency, &m.Rate, &m.Month, &m.Year, &m.RecordedAt)
	return m, err
}

func collectCurrencyRates(rows pgx.Rows) ([]domain.CurrencyRate, error) {
	defer rows.Close()
	var out []models.CurrencyRate
	for rows.Next() {
		m, err := scanCurrencyRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency rate", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rates", err)
	}
	return mapping.ToDomainCurrencyRates(out), nil
}

// ListAllRates returns every stored rate.
func (r *PgxCurrencyRateRepository) ListAllRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	return r.ListRates(ctx, portsrepo.CurrencyRateFilter{})
}

// ListRates returns the rates matching filter.
func (r *PgxCurrencyRateRepository) ListRates(ctx context.Context, filter portsrepo.CurrencyRateFilter) ([]domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + ` FROM currency_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argNum)
		args = append(args, *filter.Year)
		argNum++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND month = $%d", argNum)
		args = append(args, int16(*filter.Month))
	}
	query += " ORDER BY year, month, from_currency, to_currency"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency rates", err)
	}
	return collectCurrencyRates(rows)
}

// FindRateByID retrieves a rate by its ID.
func (r *PgxCurrencyRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error) {
	m, err := scanCurrencyRate(r.Pool.QueryRow(ctx,
		`SELECT `+currencyRateColumns+` FROM currency_rates WHERE id = $1`, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get currency rate by ID", err)
	}
	d := mapping.ToDomainCurrencyRate(m)
	return &d, nil
}

// UpsertRate updates the row at rate.ExistingID when it still exists. Otherwise it
// inserts, folding into the row already holding the same (year, month, pair) if a
// concurrent writer created one.
func (r *PgxCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.UpsertCurrencyRate) (*domain.CurrencyRate, error) {
	now := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var m models.CurrencyRate
	updated := false
	if rate.ExistingID != nil {
		m, err = scanCurrencyRate(tx.QueryRow(ctx, `
			UPDATE currency_rates
			SET from_currency = $1, to_currency = $2, rate = $3, month = $4, year = $5, recorded_at = $6
			WHERE id = $7
			RETURNING `+currencyRateColumns,
			rate.FromCurrency, rate.ToCurrency, rate.Rate, int16(rate.Month), rate.Year, now, *rate.ExistingID,
		))
		switch {
		case err == nil:
			updated = true
		case errors.Is(err, pgx.ErrNoRows):
		case isUniqueViolation(err):
			return nil, fmt.Errorf("%w: another rate already exists for %s/%s %d-%02d",
				apperrors.ErrDuplicate, rate.FromCurrency, rate.ToCurrency, rate.Year, rate.Month)
		default:
			return nil, apperrors.NewAppError(500, "failed to update currency rate", err)
		}
	}

	if !updated {
		m, err = scanCurrencyRate(tx.QueryRow(ctx, `
			INSERT INTO currency_rates (id, from_currency, to_currency, rate, month, year, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (year, month, from_currency, to_currency)
			DO UPDATE SET rate = EXCLUDED.rate, recorded_at = EXCLUDED.recorded_at
			RETURNING `+currencyRateColumns,
			uuid.NewString(), rate.FromCurrency, rate.ToCurrency, rate.Rate, int16(rate.Month), rate.Year, now,
		))
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert currency rate", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainCurrencyRate(m)
	return &d, nil
}

// DeleteRate removes a rate by its ID.
func (r *PgxCurrencyRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currency_rates WHERE id = $1`, rateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete currency rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency rate with ID " + rateID + " not found")
	}
	return nil
}
