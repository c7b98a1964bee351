package repositories

import (
	"context"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// UserSettingsReader defines read operations for user settings
type UserSettingsReader interface {
	// ListUserSettings returns all settings rows, oldest first.
	ListUserSettings(ctx context.Context) ([]domain.UserSettings, error)
}

// UserSettingsWriter defines write operations for user settings
type UserSettingsWriter interface {
	// UpsertUserSettings updates the row with settings.ID if present, else inserts it.
	UpsertUserSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error)
}

// UserSettingsRepositoryFacade combines all user settings repository interfaces
type UserSettingsRepositoryFacade interface {
	UserSettingsReader
	UserSettingsWriter
}
