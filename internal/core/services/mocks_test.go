package services_test

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserSettingsRepository ---
type MockUserSettingsRepository struct {
	mock.Mock
}

func (m *MockUserSettingsRepository) ListUserSettings(ctx context.Context) ([]domain.UserSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSettings), args.Error(1)
}

func (m *MockUserSettingsRepository) UpsertUserSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ArchiveAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock BalanceSheetRepository ---
type MockBalanceSheetRepository struct {
	mock.Mock
}

func (m *MockBalanceSheetRepository) ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetRepository) SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockBalanceSheetRepository) DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error {
	args := m.Called(ctx, balanceSheetID)
	return args.Error(0)
}

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListAllRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) ListRates(ctx context.Context, filter portsrepo.CurrencyRateFilter) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.UpsertCurrencyRate) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchDailyRates(ctx context.Context, query providers.RateQuery) (providers.DailyRates, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(providers.DailyRates), args.Error(1)
}

var (
	_ portsrepo.UserSettingsRepositoryFacade = (*MockUserSettingsRepository)(nil)
	_ portsrepo.AccountRepositoryFacade      = (*MockAccountRepository)(nil)
	_ portsrepo.BalanceSheetRepositoryFacade = (*MockBalanceSheetRepository)(nil)
	_ portsrepo.CurrencyRateRepositoryFacade = (*MockCurrencyRateRepository)(nil)
	_ providers.ExchangeRateProvider         = (*MockRateProvider)(nil)
)
