package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// alertHandler exposes the retained user alerts.
type alertHandler struct {
	alertService portssvc.AlertReaderSvc
}

// registerAlertRoutes registers the alert polling route.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertReaderSvc) {
	h := &alertHandler{alertService: alertService}

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
	}
}

// listAlerts godoc
// @Summary List recent alerts
// @Description Returns the most recent user-visible notifications, newest first
// @Tags alerts
// @Produce json
// @Success 200 {array} dto.AlertResponse
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	alerts := h.alertService.Recent(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListAlertResponse(alerts))
}
