package services

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	ArchiveAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
