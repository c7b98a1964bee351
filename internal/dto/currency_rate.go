package dto

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListCurrencyRatesParams holds the optional query filters for listing rates.
type ListCurrencyRatesParams struct {
	Year  *int `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
}

// UpsertCurrencyRateRequest defines the payload for entering a monthly rate by hand.
type UpsertCurrencyRateRequest struct {
	ID           *string         `json:"id" binding:"omitempty,uuid"`
	FromCurrency string          `json:"fromCurrency" binding:"required,iso4217"`
	ToCurrency   string          `json:"toCurrency" binding:"required,iso4217"`
	Rate         decimal.Decimal `json:"rate" binding:"required"` // must be positive, checked by the service
	Month        int             `json:"month" binding:"required,min=1,max=12"`
	Year         int             `json:"year" binding:"required,min=1900,max=9999"`
}

// CurrencyRateResponse defines the structure for API responses containing a rate.
type CurrencyRateResponse struct {
	ID           string          `json:"id"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	RecordedAt   time.Time       `json:"recordedAt"`
	Finalized    bool            `json:"finalized"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to CurrencyRateResponse DTO.
// finalized is passed in because it depends on the rate's month, not on stored data.
func ToCurrencyRateResponse(rate *domain.CurrencyRate, finalized bool) CurrencyRateResponse {
	return CurrencyRateResponse{
		ID:           rate.ID,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Month:        int(rate.Month),
		Year:         rate.Year,
		RecordedAt:   rate.RecordedAt,
		Finalized:    finalized,
	}
}
