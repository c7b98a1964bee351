package pgsql

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	"github.com/SscSPs/networth_backend/internal/models"
	"github.com/SscSPs/networth_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserSettingsRepository struct {
	BaseRepository
}

func newPgxUserSettingsRepository(pool *pgxpool.Pool) *PgxUserSettingsRepository {
	return &PgxUserSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserSettingsRepositoryFacade = (*PgxUserSettingsRepository)(nil)

// ListUserSettings returns every settings row, oldest first.
func (r *PgxUserSettingsRepository) ListUserSettings(ctx context.Context) ([]domain.UserSettings, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, home_currency, created_at, updated_at
		FROM user_settings
		ORDER BY created_at, id`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list user settings", err)
	}
	defer rows.Close()

	var out []domain.UserSettings
	for rows.Next() {
		var m models.UserSettings
		if err := rows.Scan(&m.ID, &m.Name, &m.HomeCurrency, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user settings", err)
		}
		out = append(out, mapping.ToDomainUserSettings(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user settings", err)
	}
	return out, nil
}

// UpsertUserSettings inserts settings or updates the row with the same ID.
func (r *PgxUserSettingsRepository) UpsertUserSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error) {
	in := mapping.ToModelUserSettings(settings)
	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO user_settings (id, name, home_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, home_currency = EXCLUDED.home_currency, updated_at = EXCLUDED.updated_at
		RETURNING id, name, home_currency, created_at, updated_at`,
		in.ID, in.Name, in.HomeCurrency, in.CreatedAt, in.UpdatedAt,
	).Scan(&m.ID, &m.Name, &m.HomeCurrency, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save user settings", err)
	}
	d := mapping.ToDomainUserSettings(m)
	return &d, nil
}
