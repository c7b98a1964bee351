package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/SscSPs/networth_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.UserSettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.UserSettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.saveSettings)
	}
}

// getSettings godoc
// @Summary Get user settings
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 404 {object} map[string]string "Settings not created yet"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetUserSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User settings not found"})
			return
		}
		logger.Error("Failed to get user settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}

// saveSettings godoc
// @Summary Create or update user settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.SaveUserSettingsRequest true "Settings"
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) saveSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveUserSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveUserSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.SaveUserSettings(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to save user settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}
