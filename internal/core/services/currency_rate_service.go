package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type currencyRateService struct {
	BaseService
	rateRepo portsrepo.CurrencyRateRepositoryFacade
}

// NewCurrencyRateService creates the service behind the manual rate endpoints.
func NewCurrencyRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade) portssvc.CurrencyRateSvcFacade {
	return &currencyRateService{rateRepo: rateRepo}
}

var _ portssvc.CurrencyRateSvcFacade = (*currencyRateService)(nil)

func (s *currencyRateService) ListCurrencyRates(ctx context.Context, params dto.ListCurrencyRatesParams) ([]domain.CurrencyRate, error) {
	filter := portsrepo.CurrencyRateFilter{Year: params.Year}
	if params.Month != nil {
		month := time.Month(*params.Month)
		filter.Month = &month
	}

	rates, err := s.rateRepo.ListRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency rates")
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

func (s *currencyRateService) UpsertCurrencyRate(ctx context.Context, req dto.UpsertCurrencyRateRequest) (*domain.CurrencyRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrency == req.ToCurrency {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	if req.ID != nil {
		if _, err := s.rateRepo.FindRateByID(ctx, *req.ID); err != nil {
			s.LogError(ctx, err, "Currency rate to update not found", slog.String("rate_id", *req.ID))
			return nil, fmt.Errorf("failed to find currency rate %s: %w", *req.ID, err)
		}
	}

	rate, err := s.rateRepo.UpsertRate(ctx, domain.UpsertCurrencyRate{
		ExistingID:   req.ID,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Rate:         req.Rate,
		Month:        time.Month(req.Month),
		Year:         req.Year,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert currency rate",
			slog.String("from", req.FromCurrency),
			slog.String("to", req.ToCurrency),
			slog.Int("year", req.Year),
			slog.Int("month", req.Month))
		return nil, fmt.Errorf("failed to upsert currency rate: %w", err)
	}

	s.LogInfo(ctx, "Currency rate saved", slog.String("rate_id", rate.ID))
	return rate, nil
}

func (s *currencyRateService) DeleteCurrencyRate(ctx context.Context, rateID string) error {
	if err := s.rateRepo.DeleteRate(ctx, rateID); err != nil {
		s.LogError(ctx, err, "Failed to delete currency rate", slog.String("rate_id", rateID))
		return fmt.Errorf("failed to delete currency rate %s: %w", rateID, err)
	}
	s.LogInfo(ctx, "Currency rate deleted", slog.String("rate_id", rateID))
	return nil
}
