package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for the rate table.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to the rate table.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
	}
}

// getRates godoc
// @Summary Get the fetched rate table
// @Description Returns the current rate table, sorted by currency code
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Failure 404 {object} map[string]string "Rates not fetched yet"
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	table, err := h.rateService.Table(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rates not fetched yet"})
		} else {
			logger.Error("Failed to read rate table", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read rate table"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}

// refreshRates godoc
// @Summary Re-fetch the rate table
// @Description Fetches rates from the external source; a disabled form becomes editable once this succeeds
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Failure 502 {object} map[string]string "Rate source unavailable"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.rateService.Refresh(c.Request.Context()); err != nil {
		logger.Error("Rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch rates from source"})
		return
	}

	table, err := h.rateService.Table(c.Request.Context())
	if err != nil {
		logger.Error("Rate table unavailable after refresh", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read rate table"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}
