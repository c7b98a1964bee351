package services

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/dto"
)

// UserSettingsSvcFacade defines operations on the single user's settings
type UserSettingsSvcFacade interface {
	// GetUserSettings returns the active settings row or apperrors.ErrNotFound.
	GetUserSettings(ctx context.Context) (*domain.UserSettings, error)

	// SaveUserSettings creates the settings row or updates the active one.
	SaveUserSettings(ctx context.Context, req dto.SaveUserSettingsRequest) (*domain.UserSettings, error)
}
