package mapping

import (
	"database/sql"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	var sub sql.NullString
	if d.SubCategory != nil {
		sub = sql.NullString{String: *d.SubCategory, Valid: true}
	}
	return models.Account{
		ID:          d.ID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		SubCategory: sub,
		Currency:    d.Currency,
		SortOrder:   d.SortOrder,
		IsArchived:  d.IsArchived,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	var sub *string
	if m.SubCategory.Valid {
		s := m.SubCategory.String
		sub = &s
	}
	return domain.Account{
		ID:          m.ID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		SubCategory: sub,
		Currency:    m.Currency,
		SortOrder:   m.SortOrder,
		IsArchived:  m.IsArchived,
		CreatedAt:   m.CreatedAt,
	}
}
