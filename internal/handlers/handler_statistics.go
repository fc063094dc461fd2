package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/i18n"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statisticsHandler handles HTTP requests for derived statistics.
type statisticsHandler struct {
	historyService    portssvc.HistorySvcFacade
	statisticsService portssvc.StatisticsSvc
}

// newStatisticsHandler creates a new statisticsHandler.
func newStatisticsHandler(hs portssvc.HistorySvcFacade, ss portssvc.StatisticsSvc) *statisticsHandler {
	return &statisticsHandler{
		historyService:    hs,
		statisticsService: ss,
	}
}

// registerStatisticsRoutes registers routes related to statistics.
func registerStatisticsRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade, ss portssvc.StatisticsSvc) {
	h := newStatisticsHandler(hs, ss)

	statistics := rg.Group("/statistics")
	{
		statistics.GET("", h.getStatistics)
	}
}

// getStatistics godoc
// @Summary Derive history statistics
// @Description Returns Lowest/Highest/Average over the windowed history; labels are localized via the lang parameter
// @Tags statistics
// @Produce json
// @Param window query string false "Time window" Enums(sevenDays, fourteenDays, thirtyDays, allTime)
// @Param lang query string false "Label language" Enums(en, bg, de)
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} map[string]string "Unknown window"
// @Router /statistics [get]
func (h *statisticsHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	window := h.historyService.SelectedWindow(c.Request.Context())
	if query.Window != "" {
		parsed, err := domain.ParseTimeWindow(query.Window)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		window = parsed
		if err := h.historyService.SelectWindow(c.Request.Context(), window); err != nil {
			logger.Warn("Window selection not persisted", slog.String("error", err.Error()))
		}
	}

	lang := query.Lang
	if lang == "" {
		lang = i18n.DefaultLanguage
	}

	records := h.historyService.All(c.Request.Context())
	filtered := h.statisticsService.ApplyWindow(records, window, time.Now())
	summaries := h.statisticsService.Summaries(filtered)

	logger.Info("Statistics derived", slog.String("window", string(window)), slog.Int("records", len(filtered)))
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(window, lang, summaries))
}
