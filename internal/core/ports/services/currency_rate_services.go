package services

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/dto"
)

// CurrencyRateReaderSvc defines read operations for currency rates
type CurrencyRateReaderSvc interface {
	// ListCurrencyRates lists stored rates, optionally for a year and month.
	ListCurrencyRates(ctx context.Context, params dto.ListCurrencyRatesParams) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriterSvc defines write operations for currency rates
type CurrencyRateWriterSvc interface {
	// UpsertCurrencyRate stores a manually entered rate.
	UpsertCurrencyRate(ctx context.Context, req dto.UpsertCurrencyRateRequest) (*domain.CurrencyRate, error)

	// DeleteCurrencyRate removes a rate.
	DeleteCurrencyRate(ctx context.Context, rateID string) error
}

// CurrencyRateSvcFacade combines all currency rate service interfaces
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateWriterSvc
}
