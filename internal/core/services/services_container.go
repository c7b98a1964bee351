package services

import (
	"github.com/SscSPs/networth_backend/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, provider providers.ExchangeRateProvider, syncMetrics *metrics.SyncMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.CurrencyRate = NewCurrencyRateService(repos.CurrencyRateRepo)
	container.UserSettings = NewUserSettingsService(repos.UserSettingsRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.BalanceSheet = NewBalanceSheetService(repos.BalanceSheetRepo)

	// The sync reads every collaborator directly; the CRUD services above add
	// nothing it needs.
	container.RateSync = NewExchangeRateSyncService(
		repos.UserSettingsRepo,
		repos.AccountRepo,
		repos.BalanceSheetRepo,
		repos.CurrencyRateRepo,
		provider,
		WithSyncMetrics(syncMetrics),
	)
	container.SyncJob = NewSyncJob(container.RateSync)

	return container
}
