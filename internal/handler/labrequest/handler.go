package labrequest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	labrequestsvc "github.com/medhq/hms-api/internal/service/labrequest"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *labrequestsvc.Service
}

func NewHandler(service *labrequestsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	labRequests := r.Group("/lab-requests")
	{
		labRequests.GET("", h.ListLabRequests)
		labRequests.POST("", h.CreateLabRequest)
		labRequests.GET("/:id", h.GetLabRequest)
		labRequests.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) ListLabRequests(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "lab_requests", requests, len(requests), nil)
}

func (h *Handler) GetLabRequest(c *gin.Context) {
	request, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(request))
}

func (h *Handler) CreateLabRequest(c *gin.Context) {
	var req model.CreateLabRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid lab request payload", err))
		return
	}

	request, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(request))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateLabRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid lab request payload", err))
		return
	}

	request, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(request))
}
