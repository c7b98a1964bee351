package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/core/ratesync"
	"github.com/SscSPs/networth_backend/internal/platform/metrics"
)

// exchangeRateSyncService drives a sync run year by year against one snapshot of
// the rate store. It is not safe to run concurrently with itself.
type exchangeRateSyncService struct {
	BaseService
	settingsRepo portsrepo.UserSettingsReader
	accountRepo  portsrepo.AccountReader
	sheetRepo    portsrepo.BalanceSheetReader
	rateStore    portsrepo.CurrencyRateSyncStore
	provider     providers.ExchangeRateProvider
	metrics      *metrics.SyncMetrics
	now          func() time.Time
}

// SyncServiceOption is a functional option for configuring the sync service
type SyncServiceOption func(*exchangeRateSyncService)

// WithSyncClock replaces time.Now, which decides the current year and month.
func WithSyncClock(now func() time.Time) SyncServiceOption {
	return func(s *exchangeRateSyncService) {
		s.now = now
	}
}

// WithSyncMetrics records run, year and rate counters.
func WithSyncMetrics(m *metrics.SyncMetrics) SyncServiceOption {
	return func(s *exchangeRateSyncService) {
		s.metrics = m
	}
}

// NewExchangeRateSyncService creates the exchange rate sync service.
func NewExchangeRateSyncService(
	settingsRepo portsrepo.UserSettingsReader,
	accountRepo portsrepo.AccountReader,
	sheetRepo portsrepo.BalanceSheetReader,
	rateStore portsrepo.CurrencyRateSyncStore,
	provider providers.ExchangeRateProvider,
	options ...SyncServiceOption,
) portssvc.ExchangeRateSyncSvc {
	svc := &exchangeRateSyncService{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		sheetRepo:    sheetRepo,
		rateStore:    rateStore,
		provider:     provider,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSyncSvc = (*exchangeRateSyncService)(nil)

func (s *exchangeRateSyncService) SyncExchangeRates(ctx context.Context) (*domain.SyncReport, error) {
	report, err := s.sync(ctx)
	s.metrics.ObserveRun(report)
	return report, err
}

func (s *exchangeRateSyncService) sync(ctx context.Context) (*domain.SyncReport, error) {
	report := &domain.SyncReport{StartedAt: s.now().UTC()}
	s.LogInfo(ctx, "Starting exchange rate sync")

	home, err := s.resolveHomeCurrency(ctx)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate sync aborted")
		return nil, err
	}
	report.HomeCurrency = home

	foreign, err := s.resolveForeignCurrencies(ctx, home)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate sync aborted")
		return nil, err
	}
	if len(foreign) == 0 {
		s.LogInfo(ctx, "No foreign currencies found, sync skipped")
		return s.finish(report, domain.SyncNothingToSync), nil
	}
	report.Currencies = foreign

	years, err := s.resolveYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate sync aborted")
		return nil, err
	}
	if len(years) == 0 {
		s.LogInfo(ctx, "No balance sheets found, sync skipped")
		return s.finish(report, domain.SyncNothingToSync), nil
	}

	existing, err := s.rateStore.ListAllRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate sync aborted")
		return nil, fmt.Errorf("failed to load existing currency rates: %w", err)
	}
	snapshot := ratesync.NewRateSnapshot(existing)
	today := s.now().UTC()

	s.LogInfo(ctx, "Syncing exchange rates",
		slog.Any("years", years),
		slog.String("base_currency", home),
		slog.Any("currencies", foreign),
		slog.Int("existing_rates", snapshot.Len()))

	for _, year := range years {
		if err := ctx.Err(); err != nil {
			s.LogError(ctx, err, "Exchange rate sync cancelled", slog.Int("year", year))
			return nil, fmt.Errorf("exchange rate sync cancelled: %w", err)
		}
		result := s.syncYear(ctx, year, today, foreign, home, snapshot)
		s.metrics.ObserveYear(result)
		report.AddYear(result)
	}

	return s.finish(report, domain.SyncCompleted), nil
}

func (s *exchangeRateSyncService) finish(report *domain.SyncReport, outcome domain.SyncOutcome) *domain.SyncReport {
	report.Outcome = outcome
	report.FinishedAt = s.now().UTC()
	return report
}

// syncYear fetches, aggregates and reconciles one year. Every failure is
// contained in the returned result.
func (s *exchangeRateSyncService) syncYear(ctx context.Context, year int, today time.Time, foreign []string, home string, snapshot ratesync.RateSnapshot) domain.YearSyncResult {
	window := ratesync.PlanWindow(year, today, foreign, home, snapshot)
	if window.SkipYear(today) {
		s.LogInfo(ctx, "Year already finalized, skipping", slog.Int("year", year))
		return domain.YearSyncResult{Year: year, Status: domain.YearSkippedFinalized}
	}

	result := domain.YearSyncResult{Year: year, StartMonth: window.EarliestOpenMonth}
	s.LogInfo(ctx, "Fetching exchange rates",
		slog.Int("year", year),
		slog.Int("start_month", int(window.EarliestOpenMonth)))

	daily, err := s.provider.FetchDailyRates(ctx, providers.RateQuery{
		Start:   window.StartDate(),
		End:     window.EndDate(),
		Base:    home,
		Symbols: foreign,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates", slog.Int("year", year))
		result.Status = domain.YearFetchFailed
		result.Error = err.Error()
		return result
	}

	monthly := ratesync.AggregateMonthly(daily, year)
	upserts, stats := ratesync.PlanUpserts(year, monthly, home, snapshot)
	result.SkippedFinalized = stats.SkippedFinalized

	for _, f := range stats.Failures {
		result.Failed++
		s.LogError(ctx, f.Err, "Skipping unusable exchange rate",
			slog.Int("year", year),
			slog.Int("month", int(f.Month)),
			slog.String("from", f.Currency),
			slog.String("to", home))
	}

	for _, u := range upserts {
		if _, err := s.rateStore.UpsertRate(ctx, u.UpsertCurrencyRate); err != nil {
			result.Failed++
			s.LogError(ctx, err, "Failed to upsert exchange rate",
				slog.Int("year", year),
				slog.Int("month", int(u.Month)),
				slog.String("from", u.FromCurrency),
				slog.String("to", u.ToCurrency))
			continue
		}
		result.Upserted++
		s.LogDebug(ctx, "Upserted exchange rate",
			slog.Int("year", year),
			slog.Int("month", int(u.Month)),
			slog.String("from", u.FromCurrency),
			slog.Float64("provider_rate", u.ProviderRate),
			slog.String("rate", u.Rate.String()))
	}

	result.Status = domain.YearSynced
	s.LogInfo(ctx, "Year sync complete",
		slog.Int("year", year),
		slog.Int("upserted", result.Upserted),
		slog.Int("skipped_finalized", result.SkippedFinalized),
		slog.Int("failed", result.Failed))
	return result
}

func (s *exchangeRateSyncService) resolveHomeCurrency(ctx context.Context) (string, error) {
	settings, err := s.settingsRepo.ListUserSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load user settings: %w", err)
	}
	if len(settings) == 0 || settings[0].HomeCurrency == "" {
		return "", apperrors.ErrHomeCurrencyNotSet
	}
	return settings[0].HomeCurrency, nil
}

// resolveForeignCurrencies returns the sorted distinct account currencies other
// than home. Archived accounts are included since their history still needs rates.
func (s *exchangeRateSyncService) resolveForeignCurrencies(ctx context.Context, home string) ([]string, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	seen := make(map[string]struct{})
	currencies := make([]string, 0)
	for _, a := range accounts {
		if a.Currency == "" || a.Currency == home {
			continue
		}
		if _, ok := seen[a.Currency]; ok {
			continue
		}
		seen[a.Currency] = struct{}{}
		currencies = append(currencies, a.Currency)
	}
	sort.Strings(currencies)
	return currencies, nil
}

// resolveYears returns the distinct balance sheet years in ascending order.
func (s *exchangeRateSyncService) resolveYears(ctx context.Context) ([]int, error) {
	sheets, err := s.sheetRepo.ListBalanceSheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance sheets: %w", err)
	}
	seen := make(map[int]struct{})
	years := make([]int, 0, len(sheets))
	for _, sh := range sheets {
		if _, ok := seen[sh.Year]; ok {
			continue
		}
		seen[sh.Year] = struct{}{}
		years = append(years, sh.Year)
	}
	sort.Ints(years)
	return years, nil
}
