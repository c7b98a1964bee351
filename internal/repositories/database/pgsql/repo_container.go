package pgsql

import (
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRateRepo: newPgxCurrencyRateRepository(dbPool),
		UserSettingsRepo: newPgxUserSettingsRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		BalanceSheetRepo: newPgxBalanceSheetRepository(dbPool),
	}
}
