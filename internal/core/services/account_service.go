package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		ID:          uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		SubCategory: req.SubCategory,
		Currency:    req.Currency,
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.ID),
		slog.String("currency", account.Currency))
	return &account, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.ArchiveAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to archive account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to archive account %s: %w", accountID, err)
	}
	s.LogInfo(ctx, "Account archived", slog.String("account_id", accountID))
	return nil
}
