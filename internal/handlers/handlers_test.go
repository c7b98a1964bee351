package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/SscSPs/networth_backend/internal/handlers"
	"github.com/SscSPs/networth_backend/internal/middleware"
	"github.com/SscSPs/networth_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SyncJob ---
type MockSyncJob struct {
	mock.Mock
}

func (m *MockSyncJob) TriggerSync(ctx context.Context) (*domain.SyncReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncReport), args.Error(1)
}

func (m *MockSyncJob) LastReport() (*domain.SyncReport, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.SyncReport), args.Bool(1)
}

// --- Mock CurrencyRateService ---
type MockCurrencyRateService struct {
	mock.Mock
}

func (m *MockCurrencyRateService) ListCurrencyRates(ctx context.Context, params dto.ListCurrencyRatesParams) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateService) UpsertCurrencyRate(ctx context.Context, req dto.UpsertCurrencyRateRequest) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateService) DeleteCurrencyRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock UserSettingsService ---
type MockUserSettingsService struct {
	mock.Mock
}

func (m *MockUserSettingsService) GetUserSettings(ctx context.Context) (*domain.UserSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockUserSettingsService) SaveUserSettings(ctx context.Context, req dto.SaveUserSettingsRequest) (*domain.UserSettings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ArchiveAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock BalanceSheetService ---
type MockBalanceSheetService struct {
	mock.Mock
}

func (m *MockBalanceSheetService) ListBalanceSheets(ctx context.Context) ([]domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) CreateBalanceSheet(ctx context.Context, req dto.CreateBalanceSheetRequest) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) DeleteBalanceSheet(ctx context.Context, balanceSheetID string) error {
	args := m.Called(ctx, balanceSheetID)
	return args.Error(0)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.SyncJobSvc            = (*MockSyncJob)(nil)
	_ portssvc.CurrencyRateSvcFacade = (*MockCurrencyRateService)(nil)
	_ portssvc.UserSettingsSvcFacade = (*MockUserSettingsService)(nil)
	_ portssvc.AccountSvcFacade      = (*MockAccountService)(nil)
	_ portssvc.BalanceSheetSvcFacade = (*MockBalanceSheetService)(nil)
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	jwtSecret        string
	mockSyncJob      *MockSyncJob
	mockRateService  *MockCurrencyRateService
	mockSettings     *MockUserSettingsService
	mockAccounts     *MockAccountService
	mockBalanceSheet *MockBalanceSheetService
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "networth-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.StructuredLoggingMiddleware(nil))

	suite.mockSyncJob = new(MockSyncJob)
	suite.mockRateService = new(MockCurrencyRateService)
	suite.mockSettings = new(MockUserSettingsService)
	suite.mockAccounts = new(MockAccountService)
	suite.mockBalanceSheet = new(MockBalanceSheetService)

	suite.registerRoutes(suite.router)
}

func (suite *HandlerTestSuite) registerRoutes(router *gin.Engine, opts ...handlers.RouteOption) {
	container := &portssvc.ServiceContainer{
		CurrencyRate: suite.mockRateService,
		UserSettings: suite.mockSettings,
		Account:      suite.mockAccounts,
		BalanceSheet: suite.mockBalanceSheet,
		SyncJob:      suite.mockSyncJob,
	}
	err := handlers.RegisterRoutes(router, &config.Config{JWTSecret: suite.jwtSecret}, container, nil, prometheus.NewRegistry(), opts...)
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Sync ---

func (suite *HandlerTestSuite) TestTriggerSync_Success() {
	report := &domain.SyncReport{Outcome: domain.SyncCompleted, HomeCurrency: "USD", Processed: 12, Skipped: 1}
	suite.mockSyncJob.On("TriggerSync", mock.Anything).Return(report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sync/exchange-rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body domain.SyncReport
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.SyncCompleted, body.Outcome)
	suite.Equal(12, body.Processed)
	suite.Equal(1, body.Skipped)
	suite.mockSyncJob.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTriggerSync_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"in progress", apperrors.ErrSyncInProgress, http.StatusConflict},
		{"no home currency", apperrors.ErrHomeCurrencyNotSet, http.StatusPreconditionFailed},
		{"other", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockSyncJob.On("TriggerSync", mock.Anything).Return(nil, tc.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/sync/exchange-rates", nil)
			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestTriggerSync_CancelledWhenLifetimeEnds() {
	lifetime, shutdown := context.WithCancel(context.Background())
	defer shutdown()
	suite.router = gin.New()
	suite.registerRoutes(suite.router, handlers.WithLifetime(lifetime))

	var cancelledDuringRun bool
	suite.mockSyncJob.On("TriggerSync", mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		suite.NoError(ctx.Err())
		shutdown()
		select {
		case <-ctx.Done():
			cancelledDuringRun = true
		case <-time.After(time.Second):
		}
	}).Return(nil, context.Canceled).Once()

	w := suite.do(http.MethodPost, "/api/v1/sync/exchange-rates", nil)

	suite.True(cancelledDuringRun)
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestTriggerSync_IgnoresClientDisconnect() {
	reqCtx, disconnect := context.WithCancel(context.Background())
	defer disconnect()

	errDuringRun := errors.New("not called")
	suite.mockSyncJob.On("TriggerSync", mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		disconnect()
		errDuringRun = ctx.Err()
	}).Return(&domain.SyncReport{Outcome: domain.SyncCompleted}, nil).Once()

	req, _ := http.NewRequestWithContext(reqCtx, http.MethodPost, "/api/v1/sync/exchange-rates", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(errDuringRun)
}

func (suite *HandlerTestSuite) TestTriggerSync_RequiresToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sync/exchange-rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSyncJob.AssertNotCalled(suite.T(), "TriggerSync", mock.Anything)
}

func (suite *HandlerTestSuite) TestLastReport() {
	suite.mockSyncJob.On("LastReport").Return(nil, false).Once()
	w := suite.do(http.MethodGet, "/api/v1/sync/exchange-rates/last", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.mockSyncJob.On("LastReport").Return(&domain.SyncReport{Outcome: domain.SyncNothingToSync}, true).Once()
	w = suite.do(http.MethodGet, "/api/v1/sync/exchange-rates/last", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"outcome":"nothing_to_sync"`)
}

// --- Currency rates ---

func (suite *HandlerTestSuite) TestListCurrencyRates_MarksFinalized() {
	rates := []domain.CurrencyRate{
		{ID: "closed", FromCurrency: "EUR", ToCurrency: "USD", Rate: decimal.RequireFromString("1.08"), Month: time.March, Year: 2024,
			RecordedAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "open", FromCurrency: "EUR", ToCurrency: "USD", Rate: decimal.RequireFromString("1.09"), Month: time.April, Year: 2024,
			RecordedAt: time.Date(2024, time.April, 30, 23, 59, 0, 0, time.UTC)},
	}
	year := 2024
	suite.mockRateService.On("ListCurrencyRates", mock.Anything, dto.ListCurrencyRatesParams{Year: &year}).Return(rates, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates?year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CurrencyRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.True(body[0].Finalized)
	suite.False(body[1].Finalized)
	suite.Equal(3, body[0].Month)
}

func (suite *HandlerTestSuite) TestListCurrencyRates_InvalidMonth() {
	w := suite.do(http.MethodGet, "/api/v1/currency-rates?month=13", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRateService.AssertNotCalled(suite.T(), "ListCurrencyRates", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpsertCurrencyRate_RejectsLowercaseCurrency() {
	w := suite.do(http.MethodPut, "/api/v1/currency-rates", map[string]any{
		"fromCurrency": "eur", "toCurrency": "USD", "rate": "1.1", "month": 1, "year": 2024,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.Contains(w.Body.String(), "iso4217"))
	suite.mockRateService.AssertNotCalled(suite.T(), "UpsertCurrencyRate", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpsertCurrencyRate_Success() {
	saved := &domain.CurrencyRate{ID: uuid.NewString(), FromCurrency: "EUR", ToCurrency: "USD",
		Rate: decimal.RequireFromString("1.1"), Month: time.January, Year: 2024, RecordedAt: time.Now().UTC()}
	suite.mockRateService.On("UpsertCurrencyRate", mock.Anything, mock.MatchedBy(func(r dto.UpsertCurrencyRateRequest) bool {
		return r.FromCurrency == "EUR" && r.Month == 1 && r.Rate.Equal(decimal.RequireFromString("1.1"))
	})).Return(saved, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/currency-rates", map[string]any{
		"fromCurrency": "EUR", "toCurrency": "USD", "rate": "1.1", "month": 1, "year": 2024,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), saved.ID)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpsertCurrencyRate_ValidationError() {
	suite.mockRateService.On("UpsertCurrencyRate", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("exchange rate must be positive")).Once()

	w := suite.do(http.MethodPut, "/api/v1/currency-rates", map[string]any{
		"fromCurrency": "EUR", "toCurrency": "USD", "rate": "-1", "month": 1, "year": 2024,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCurrencyRate_NotFound() {
	suite.mockRateService.On("DeleteCurrencyRate", mock.Anything, "missing").
		Return(apperrors.NewNotFoundError("currency rate not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currency-rates/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Collaborators ---

func (suite *HandlerTestSuite) TestGetSettings_NotFound() {
	suite.mockSettings.On("GetUserSettings", mock.Anything).Return(nil, apperrors.NewNotFoundError("user settings not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSaveSettings() {
	req := dto.SaveUserSettingsRequest{Name: "me", HomeCurrency: "EUR"}
	suite.mockSettings.On("SaveUserSettings", mock.Anything, req).
		Return(&domain.UserSettings{ID: "s1", Name: "me", HomeCurrency: "EUR"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/settings", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"homeCurrency":"EUR"`)
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	req := dto.CreateAccountRequest{Name: "Broker", AccountType: domain.Asset, Currency: "GBP"}
	suite.mockAccounts.On("CreateAccount", mock.Anything, req).
		Return(&domain.Account{ID: "a1", Name: "Broker", AccountType: domain.Asset, Currency: "GBP"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "X", "accountType": "EQUITY", "currency": "GBP",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_IncludeArchived() {
	suite.mockAccounts.On("ListAccounts", mock.Anything, true).Return([]domain.Account{{ID: "a1", IsArchived: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?includeArchived=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isArchived":true`)
}

func (suite *HandlerTestSuite) TestCreateBalanceSheet_Duplicate() {
	suite.mockBalanceSheet.On("CreateBalanceSheet", mock.Anything, dto.CreateBalanceSheetRequest{Year: 2024}).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/balance-sheets", dto.CreateBalanceSheetRequest{Year: 2024})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestHealthAndMetricsArePublic() {
	for _, path := range []string{"/health", "/metrics"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusOK, w.Code, path)
	}
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
