package appointment

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	appointmentsvc "github.com/medhq/hms-api/internal/service/appointment"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *appointmentsvc.Service
}

func NewHandler(service *appointmentsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/counts", h.GetCounts)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
	}
}

// ListAppointments serves both the full schedule and a single day's slice:
// a ?date=YYYY-MM-DD parameter narrows the list to that calendar day before
// the usual filters apply.
func (h *Handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	criteria := handler.CriteriaFromQuery(c)

	var (
		appointments []model.Appointment
		err          error
	)
	if raw := c.Query("date"); raw != "" {
		day, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			handler.Error(c, apperrors.BadRequest("invalid date parameter", parseErr))
			return
		}
		appointments, err = h.service.ListDay(ctx, day, criteria)
	} else {
		appointments, err = h.service.List(ctx, criteria)
	}
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "appointments", appointments, len(appointments), nil)
}

func (h *Handler) GetCounts(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context(), handler.CriteriaFromQuery(c), time.Now())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(counts))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid appointment payload", err))
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid appointment payload", err))
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	appointment, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}
