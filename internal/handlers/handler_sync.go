package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// syncHandler exposes manual exchange rate sync runs.
type syncHandler struct {
	syncJob  portssvc.SyncJobSvc
	lifetime context.Context
}

func newSyncHandler(job portssvc.SyncJobSvc, lifetime context.Context) *syncHandler {
	return &syncHandler{syncJob: job, lifetime: lifetime}
}

// registerSyncRoutes registers routes related to exchange rate synchronization.
// Runs are cancelled when lifetime is done, not when the client disconnects.
func registerSyncRoutes(rg *gin.RouterGroup, job portssvc.SyncJobSvc, lifetime context.Context) {
	h := newSyncHandler(job, lifetime)

	sync := rg.Group("/sync/exchange-rates")
	{
		sync.POST("", h.triggerSync)
		sync.GET("/last", h.lastReport)
	}
}

// triggerSync godoc
// @Summary Run an exchange rate sync
// @Description Fetches monthly rates for every balance sheet year and foreign account currency, skipping finalized months
// @Tags sync
// @Produce  json
// @Success 200 {object} domain.SyncReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A sync is already running"
// @Failure 412 {object} map[string]string "Home currency not configured"
// @Failure 500 {object} map[string]string "Sync failed"
// @Security BearerAuth
// @Router /sync/exchange-rates [post]
func (h *syncHandler) triggerSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to sync exchange rates")

	// A client hanging up must not abort a run halfway through its years; shutdown does.
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()
	stop := context.AfterFunc(h.lifetime, cancel)
	defer stop()

	report, err := h.syncJob.TriggerSync(ctx)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSyncInProgress):
			logger.Warn("Exchange rate sync already in progress")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrHomeCurrencyNotSet):
			logger.Warn("Exchange rate sync requested without home currency")
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Home currency must be set before syncing exchange rates"})
		default:
			logger.Error("Exchange rate sync failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync exchange rates"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// lastReport godoc
// @Summary Get the last sync report
// @Tags sync
// @Produce  json
// @Success 200 {object} domain.SyncReport
// @Failure 404 {object} map[string]string "No sync has completed yet"
// @Security BearerAuth
// @Router /sync/exchange-rates/last [get]
func (h *syncHandler) lastReport(c *gin.Context) {
	report, ok := h.syncJob.LastReport()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rate sync has completed yet"})
		return
	}
	c.JSON(http.StatusOK, report)
}
