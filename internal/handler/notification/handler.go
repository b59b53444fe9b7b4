package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	notificationsvc "github.com/medhq/hms-api/internal/service/notification"
)

type Handler struct {
	service *notificationsvc.Service
}

func NewHandler(service *notificationsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.POST("/read-all", h.MarkAllRead)
	}
}

func (h *Handler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	notifications, err := h.service.List(ctx, handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	unread, err := h.service.UnreadCount(ctx)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "notifications", notifications, len(notifications), gin.H{"unread": unread})
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"read": true}))
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context()); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"read": true}))
}
