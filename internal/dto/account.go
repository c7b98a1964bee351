package dto

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=255"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY"`
	SubCategory *string            `json:"subCategory" binding:"omitempty,max=100"`
	Currency    string             `json:"currency" binding:"required,iso4217"`
	SortOrder   int                `json:"sortOrder" binding:"min=0"`
}

// ListAccountsParams holds query options for listing accounts.
type ListAccountsParams struct {
	IncludeArchived bool `form:"includeArchived"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	SubCategory *string            `json:"subCategory"`
	Currency    string             `json:"currency"`
	SortOrder   int                `json:"sortOrder"`
	IsArchived  bool               `json:"isArchived"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		SubCategory: acc.SubCategory,
		Currency:    acc.Currency,
		SortOrder:   acc.SortOrder,
		IsArchived:  acc.IsArchived,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
