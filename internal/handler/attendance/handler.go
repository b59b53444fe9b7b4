package attendance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	attendancesvc "github.com/medhq/hms-api/internal/service/attendance"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *attendancesvc.Service
}

func NewHandler(service *attendancesvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", h.ListRecords)
		attendance.POST("", h.CreateRecord)
		attendance.GET("/report", h.GetReport)
		attendance.GET("/:id", h.GetRecord)
		attendance.PUT("/:id", h.UpdateRecord)
	}
}

func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "records", records, len(records), nil)
}

func (h *Handler) GetRecord(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid attendance payload", err))
		return
	}

	record, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	var req model.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid attendance payload", err))
		return
	}

	record, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

// GetReport builds the aggregated attendance report for an inclusive date
// range, defaulting to the last 30 days. Report generation simulates a slow
// backend, so a client that navigates away cancels it through the request
// context.
func (h *Handler) GetReport(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			handler.Error(c, apperrors.BadRequest("invalid from parameter", err))
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			handler.Error(c, apperrors.BadRequest("invalid to parameter", err))
			return
		}
		to = parsed
	}

	report, err := h.service.Report(c.Request.Context(), from, to)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}
