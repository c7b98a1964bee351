package mapping

import (
	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/models"
)

func ToModelBalanceSheet(d domain.BalanceSheet) models.BalanceSheet {
	return models.BalanceSheet{ID: d.ID, Year: d.Year, CreatedAt: d.CreatedAt}
}

func ToDomainBalanceSheet(m models.BalanceSheet) domain.BalanceSheet {
	return domain.BalanceSheet{ID: m.ID, Year: m.Year, CreatedAt: m.CreatedAt}
}
