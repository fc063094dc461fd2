package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler handles HTTP requests over the conversion history.
type historyHandler struct {
	historyService    portssvc.HistorySvcFacade
	statisticsService portssvc.StatisticsSvc
	converterService  portssvc.ConverterSvcFacade
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade, ss portssvc.StatisticsSvc, cs portssvc.ConverterSvcFacade) *historyHandler {
	return &historyHandler{
		historyService:    hs,
		statisticsService: ss,
		converterService:  cs,
	}
}

// registerHistoryRoutes registers routes related to the conversion history.
func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade, ss portssvc.StatisticsSvc, cs portssvc.ConverterSvcFacade) {
	h := newHistoryHandler(hs, ss, cs)

	history := rg.Group("/history")
	{
		history.GET("", h.listHistory)
		history.GET("/events", h.listEvents)
		history.GET("/chart", h.chartPoints)
		history.DELETE("/:id", h.deleteRecord)
		history.POST("/:id/referral", h.referral)
	}
}

// listHistory godoc
// @Summary List conversion records
// @Description Returns the history filtered by the requested (or stored) time window, newest first
// @Tags history
// @Produce json
// @Param window query string false "Time window" Enums(sevenDays, fourteenDays, thirtyDays, allTime)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Unknown window"
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, ok := h.resolveWindow(c)
	if !ok {
		return
	}

	records := h.historyService.All(c.Request.Context())
	filtered := h.statisticsService.ApplyWindow(records, window, time.Now())

	logger.Info("History listed", slog.String("window", string(window)), slog.Int("count", len(filtered)))
	c.JSON(http.StatusOK, dto.HistoryResponse{
		Window:  string(window),
		Records: dto.ToListConversionRecordResponse(filtered),
	})
}

// listEvents godoc
// @Summary List history event rows
// @Description Returns the presentation rows for the history table
// @Tags history
// @Produce json
// @Success 200 {array} dto.HistoryEventResponse
// @Router /history/events [get]
func (h *historyHandler) listEvents(c *gin.Context) {
	events := h.historyService.Events(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListHistoryEventResponse(events))
}

// chartPoints godoc
// @Summary Scatter chart points
// @Description Returns the {x: date, y: event} points for the history chart
// @Tags history
// @Produce json
// @Success 200 {array} dto.ChartPointResponse
// @Router /history/chart [get]
func (h *historyHandler) chartPoints(c *gin.Context) {
	points := h.historyService.ChartPoints(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListChartPointResponse(points))
}

// deleteRecord godoc
// @Summary Delete one conversion record
// @Description Removes a record by id; removing an absent id is a no-op
// @Tags history
// @Produce json
// @Param id path int true "Record ID"
// @Success 204 "Removed"
// @Failure 400 {object} map[string]string "Invalid id"
// @Router /history/{id} [delete]
func (h *historyHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record id must be an integer"})
		return
	}

	// A failed persistence write is logged but not surfaced: the
	// in-memory list is already updated and remains authoritative.
	if err := h.historyService.Remove(c.Request.Context(), id); err != nil {
		logger.Warn("Record removed in memory only", slog.Int64("id", id), slog.String("error", err.Error()))
	}
	c.Status(http.StatusNoContent)
}

// referral godoc
// @Summary Pre-populate the converter form from a record
// @Description Loads the record's amount and currencies into the form and arms the one-shot re-check
// @Tags history
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.ConversionRecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Router /history/{id}/referral [post]
func (h *historyHandler) referral(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record id must be an integer"})
		return
	}

	record, err := h.historyService.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to load record for referral", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record"})
		}
		return
	}

	h.converterService.LoadReferral(c.Request.Context(), *record)
	logger.Info("Converter form pre-populated from history", slog.Int64("id", id))
	c.JSON(http.StatusOK, dto.ToConversionRecordResponse(record))
}

// resolveWindow reads the optional window query parameter, persisting an
// explicit selection; without one the stored preference applies.
func (h *historyHandler) resolveWindow(c *gin.Context) (domain.TimeWindow, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return "", false
	}

	if query.Window == "" {
		return h.historyService.SelectedWindow(c.Request.Context()), true
	}

	window, err := domain.ParseTimeWindow(query.Window)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	if err := h.historyService.SelectWindow(c.Request.Context(), window); err != nil {
		logger.Warn("Window selection not persisted", slog.String("error", err.Error()))
	}
	return window, true
}
