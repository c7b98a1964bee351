package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/networth_backend/internal/apperrors"
	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/core/ratesync"
	"github.com/SscSPs/networth_backend/internal/dto"
	"github.com/SscSPs/networth_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyRateHandler handles HTTP requests related to stored monthly rates.
type currencyRateHandler struct {
	rateService portssvc.CurrencyRateSvcFacade
}

func newCurrencyRateHandler(rs portssvc.CurrencyRateSvcFacade) *currencyRateHandler {
	return &currencyRateHandler{rateService: rs}
}

// registerCurrencyRateRoutes registers routes related to currency rates.
func registerCurrencyRateRoutes(rg *gin.RouterGroup, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyRateHandler(rateService)

	rates := rg.Group("/currency-rates")
	{
		rates.GET("", h.listCurrencyRates)
		rates.PUT("", h.upsertCurrencyRate)
		rates.DELETE("/:rateID", h.deleteCurrencyRate)
	}
}

// listCurrencyRates godoc
// @Summary List currency rates
// @Description Lists stored monthly rates, optionally filtered by year and month
// @Tags currency rates
// @Produce  json
// @Param   year  query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list currency rates"
// @Security BearerAuth
// @Router /currency-rates [get]
func (h *currencyRateHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCurrencyRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCurrencyRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, err := h.rateService.ListCurrencyRates(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list currency rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currency rates"})
		return
	}

	resp := make([]dto.CurrencyRateResponse, len(rates))
	for i := range rates {
		r := &rates[i]
		resp[i] = dto.ToCurrencyRateResponse(r, ratesync.IsFinalized(r, r.Year, r.Month))
	}
	c.JSON(http.StatusOK, resp)
}

// upsertCurrencyRate godoc
// @Summary Create or update a currency rate
// @Description Stores a manually entered monthly rate. With an id the existing row is updated.
// @Tags currency rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertCurrencyRateRequest true "Rate details"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rate to update not found"
// @Failure 409 {object} map[string]string "Another rate exists for this month and pair"
// @Failure 500 {object} map[string]string "Failed to save currency rate"
// @Security BearerAuth
// @Router /currency-rates [put]
func (h *currencyRateHandler) upsertCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertCurrencyRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to upsert currency rate",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.Int("year", req.Year),
		slog.Int("month", req.Month))

	rate, err := h.rateService.UpsertCurrencyRate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency rate not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to upsert currency rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save currency rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate, ratesync.IsFinalized(rate, rate.Year, rate.Month)))
}

// deleteCurrencyRate godoc
// @Summary Delete a currency rate
// @Tags currency rates
// @Param   rateID path string true "Rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Currency rate not found"
// @Failure 500 {object} map[string]string "Failed to delete currency rate"
// @Security BearerAuth
// @Router /currency-rates/{rateID} [delete]
func (h *currencyRateHandler) deleteCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	if err := h.rateService.DeleteCurrencyRate(c.Request.Context(), rateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency rate not found"})
			return
		}
		logger.Error("Failed to delete currency rate", slog.String("rate_id", rateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete currency rate"})
		return
	}
	c.Status(http.StatusNoContent)
}
