package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests driving the conversion workflow.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// registerConverterRoutes registers routes related to the conversion form.
func registerConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConverterHandler(converterService)

	converter := rg.Group("/converter")
	{
		converter.GET("", h.getForm)
		converter.PATCH("/fields", h.editField)
		converter.POST("/swap", h.swap)
		converter.POST("/convert", h.convert)
	}
}

// getForm godoc
// @Summary Get the converter form state
// @Description Returns the current form snapshot; a pending referral triggers the one-shot validity re-check
// @Tags converter
// @Produce json
// @Success 200 {object} dto.ConverterFormResponse
// @Router /converter [get]
func (h *converterHandler) getForm(c *gin.Context) {
	form := h.converterService.Form(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToConverterFormResponse(form))
}

// editField godoc
// @Summary Edit one converter form field
// @Description Applies a tagged field edit: negative amounts clamp to 0, currency input runs autocomplete
// @Tags converter
// @Accept json
// @Produce json
// @Param edit body dto.EditFieldRequest true "Field edit"
// @Success 200 {object} dto.ConverterFormResponse
// @Failure 400 {object} map[string]string "Invalid input or disabled form"
// @Router /converter/fields [patch]
func (h *converterHandler) editField(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditField", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	form, err := h.converterService.EditField(c.Request.Context(), domain.FieldEdited{
		Field: domain.FormField(req.Field),
		Value: req.Value,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected field edit", slog.String("field", req.Field), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to apply field edit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply field edit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConverterFormResponse(form))
}

// swap godoc
// @Summary Swap the conversion direction
// @Description Exchanges the from/to field values and re-validates the form
// @Tags converter
// @Produce json
// @Success 200 {object} dto.ConverterFormResponse
// @Failure 400 {object} map[string]string "Disabled form"
// @Router /converter/swap [post]
func (h *converterHandler) swap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	form, err := h.converterService.Swap(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected swap", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to swap form", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to swap form"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToConverterFormResponse(form))
}

// convert godoc
// @Summary Commit the conversion
// @Description Computes the cross rate, appends a record to the history and returns the result
// @Tags converter
// @Produce json
// @Success 201 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Form not valid"
// @Router /converter/convert [post]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	record, err := h.converterService.Convert(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	logger.Info("Conversion committed", slog.Int64("id", record.ID), slog.String("from", record.FromCurrency), slog.String("to", record.ToCurrency))
	c.JSON(http.StatusCreated, dto.ToConvertResponse(record))
}
