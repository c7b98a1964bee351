package mapping

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		ID:           d.ID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Rate:         d.Rate,
		Month:        int16(d.Month),
		Year:         d.Year,
		RecordedAt:   d.RecordedAt,
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		ID:           m.ID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		Rate:         m.Rate,
		Month:        time.Month(m.Month),
		Year:         m.Year,
		RecordedAt:   m.RecordedAt,
	}
}

// ToDomainCurrencyRates converts a slice of model rates.
func ToDomainCurrencyRates(ms []models.CurrencyRate) []domain.CurrencyRate {
	out := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCurrencyRate(m)
	}
	return out
}
