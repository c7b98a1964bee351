package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// CurrencyRateFilter narrows ListRates. Nil fields are not filtered on.
type CurrencyRateFilter struct {
	Year  *int
	Month *time.Month
}

// CurrencyRateReader defines read operations for monthly currency rates
type CurrencyRateReader interface {
	// ListAllRates returns every stored rate.
	ListAllRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// ListRates returns the rates matching filter, ordered by year, month and pair.
	ListRates(ctx context.Context, filter CurrencyRateFilter) ([]domain.CurrencyRate, error)

	// FindRateByID retrieves a rate by its identifier.
	FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for monthly currency rates
type CurrencyRateWriter interface {
	// UpsertRate updates the row at rate.ExistingID when it exists, otherwise inserts
	// a new row. RecordedAt is set to the time of the write.
	UpsertRate(ctx context.Context, rate domain.UpsertCurrencyRate) (*domain.CurrencyRate, error)

	// DeleteRate removes a rate by its identifier.
	DeleteRate(ctx context.Context, rateID string) error
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}

// CurrencyRateRepositoryWithTx extends CurrencyRateRepositoryFacade with transaction capabilities
type CurrencyRateRepositoryWithTx interface {
	CurrencyRateRepositoryFacade
	TransactionManager
}

// CurrencyRateSyncStore is the narrow view of the rate store used by the exchange
// rate sync: one snapshot read per run and single-row upserts.
type CurrencyRateSyncStore interface {
	ListAllRates(ctx context.Context) ([]domain.CurrencyRate, error)
	UpsertRate(ctx context.Context, rate domain.UpsertCurrencyRate) (*domain.CurrencyRate, error)
}
