package dto

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// CreateBalanceSheetRequest defines the payload for opening a year's balance sheet.
type CreateBalanceSheetRequest struct {
	Year int `json:"year" binding:"required,min=1900,max=9999"`
}

// BalanceSheetResponse defines the data returned for a balance sheet.
type BalanceSheetResponse struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its response DTO.
func ToBalanceSheetResponse(s *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{ID: s.ID, Year: s.Year, CreatedAt: s.CreatedAt}
}
