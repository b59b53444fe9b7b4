package audit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	auditsvc "github.com/medhq/hms-api/internal/service/audit"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *auditsvc.Service
}

func NewHandler(service *auditsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/audit-logs")
	{
		logs.GET("", h.ListLogs)
		logs.GET("/stats", h.GetStats)
		logs.GET("/export", h.ExportLogs)
	}
}

func (h *Handler) ListLogs(c *gin.Context) {
	logs, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "logs", logs, len(logs), nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

// ExportLogs downloads the currently filtered logs as a file. The format
// parameter selects csv (default) or json; an empty result still produces a
// valid file.
func (h *Handler) ExportLogs(c *gin.Context) {
	logs, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}

	format := c.DefaultQuery("format", "csv")

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case "csv":
		payload, err = auditsvc.ExportCSV(logs)
		contentType = "text/csv"
	case "json":
		payload, err = auditsvc.ExportJSON(logs)
		contentType = "application/json"
	default:
		handler.Error(c, apperrors.BadRequest("unsupported export format", nil))
		return
	}
	if err != nil {
		handler.Error(c, err)
		return
	}

	filename := auditsvc.ExportFilename(format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
