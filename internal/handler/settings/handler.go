package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	settingssvc "github.com/medhq/hms-api/internal/service/settings"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *settingssvc.Service
}

func NewHandler(service *settingssvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("/general", h.UpdateGeneral)
		settings.PUT("/notifications", h.UpdateNotifications)
		settings.PUT("/security", h.UpdateSecurity)
	}
}

func (h *Handler) GetSettings(c *gin.Context) {
	current, err := h.service.Get(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(current))
}

func (h *Handler) UpdateGeneral(c *gin.Context) {
	var req model.UpdateGeneralSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid settings payload", err))
		return
	}

	updated, err := h.service.UpdateGeneral(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) UpdateNotifications(c *gin.Context) {
	var req model.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid settings payload", err))
		return
	}

	updated, err := h.service.UpdateNotifications(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) UpdateSecurity(c *gin.Context) {
	var req model.UpdateSecuritySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid settings payload", err))
		return
	}

	updated, err := h.service.UpdateSecurity(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}
