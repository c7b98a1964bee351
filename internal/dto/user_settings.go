package dto

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// SaveUserSettingsRequest defines the payload for creating or updating settings.
type SaveUserSettingsRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	HomeCurrency string `json:"homeCurrency" binding:"required,iso4217"`
}

// UserSettingsResponse is returned by the settings endpoints.
type UserSettingsResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	HomeCurrency string    `json:"homeCurrency"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserSettingsResponse converts domain.UserSettings to its response DTO.
func ToUserSettingsResponse(s *domain.UserSettings) UserSettingsResponse {
	return UserSettingsResponse{
		ID:           s.ID,
		Name:         s.Name,
		HomeCurrency: s.HomeCurrency,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
