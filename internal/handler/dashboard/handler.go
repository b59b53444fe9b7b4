package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	dashboardsvc "github.com/medhq/hms-api/internal/service/dashboard"
)

type Handler struct {
	service *dashboardsvc.Service
}

func NewHandler(service *dashboardsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), time.Now())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}
