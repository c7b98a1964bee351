package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	"github.com/SscSPs/networth_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/google/uuid"
)

type userSettingsService struct {
	BaseService
	settingsRepo portsrepo.UserSettingsRepositoryFacade
}

// NewUserSettingsService creates the settings service. The first stored row is the
// active one, matching how the sync picks the home currency.
func NewUserSettingsService(settingsRepo portsrepo.UserSettingsRepositoryFacade) portssvc.UserSettingsSvcFacade {
	return &userSettingsService{settingsRepo: settingsRepo}
}

var _ portssvc.UserSettingsSvcFacade = (*userSettingsService)(nil)

func (s *userSettingsService) GetUserSettings(ctx context.Context) (*domain.UserSettings, error) {
	all, err := s.settingsRepo.ListUserSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load user settings")
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}
	if len(all) == 0 {
		return nil, apperrors.NewNotFoundError("user settings not found")
	}
	return &all[0], nil
}

func (s *userSettingsService) SaveUserSettings(ctx context.Context, req dto.SaveUserSettingsRequest) (*domain.UserSettings, error) {
	all, err := s.settingsRepo.ListUserSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load user settings")
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}

	now := time.Now().UTC()
	settings := domain.UserSettings{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	if len(all) > 0 {
		settings = all[0]
	}
	settings.Name = req.Name
	settings.HomeCurrency = req.HomeCurrency
	settings.UpdatedAt = now

	saved, err := s.settingsRepo.UpsertUserSettings(ctx, settings)
	if err != nil {
		s.LogError(ctx, err, "Failed to save user settings", slog.String("settings_id", settings.ID))
		return nil, fmt.Errorf("failed to save user settings: %w", err)
	}

	s.LogInfo(ctx, "User settings saved",
		slog.String("settings_id", saved.ID),
		slog.String("home_currency", saved.HomeCurrency))
	return saved, nil
}
