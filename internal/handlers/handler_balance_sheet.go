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

type balanceSheetHandler struct {
	sheetService portssvc.BalanceSheetSvcFacade
}

func registerBalanceSheetRoutes(rg *gin.RouterGroup, sheetService portssvc.BalanceSheetSvcFacade) {
	h := &balanceSheetHandler{sheetService: sheetService}

	sheets := rg.Group("/balance-sheets")
	{
		sheets.GET("", h.listBalanceSheets)
		sheets.POST("", h.createBalanceSheet)
		sheets.DELETE("/:balanceSheetID", h.deleteBalanceSheet)
	}
}

// listBalanceSheets godoc
// @Summary List balance sheets
// @Tags balance sheets
// @Produce  json
// @Success 200 {array} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /balance-sheets [get]
func (h *balanceSheetHandler) listBalanceSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sheets, err := h.sheetService.ListBalanceSheets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list balance sheets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balance sheets"})
		return
	}
	resp := make([]dto.BalanceSheetResponse, len(sheets))
	for i := range sheets {
		resp[i] = dto.ToBalanceSheetResponse(&sheets[i])
	}
	c.JSON(http.StatusOK, resp)
}

// createBalanceSheet godoc
// @Summary Open a balance sheet for a year
// @Tags balance sheets
// @Accept  json
// @Produce  json
// @Param   sheet body dto.CreateBalanceSheetRequest true "Year"
// @Success 201 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Balance sheet for the year already exists"
// @Security BearerAuth
// @Router /balance-sheets [post]
func (h *balanceSheetHandler) createBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBalanceSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sheet, err := h.sheetService.CreateBalanceSheet(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create balance sheet"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToBalanceSheetResponse(sheet))
}

// deleteBalanceSheet godoc
// @Summary Delete a balance sheet
// @Tags balance sheets
// @Param   balanceSheetID path string true "Balance sheet ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Balance sheet not found"
// @Security BearerAuth
// @Router /balance-sheets/{balanceSheetID} [delete]
func (h *balanceSheetHandler) deleteBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("balanceSheetID")

	if err := h.sheetService.DeleteBalanceSheet(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Balance sheet not found"})
			return
		}
		logger.Error("Failed to delete balance sheet", slog.String("balance_sheet_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete balance sheet"})
		return
	}
	c.Status(http.StatusNoContent)
}
