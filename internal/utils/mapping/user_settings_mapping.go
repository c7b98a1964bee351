package mapping

import (
	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/SscSPs/networth_backend/internal/models"
)

// ToModelUserSettings converts domain UserSettings to model UserSettings
func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		ID:           d.ID,
		Name:         d.Name,
		HomeCurrency: d.HomeCurrency,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainUserSettings converts model UserSettings to domain UserSettings
func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		ID:           m.ID,
		Name:         m.Name,
		HomeCurrency: m.HomeCurrency,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
