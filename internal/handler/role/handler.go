package role

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	rolesvc "github.com/medhq/hms-api/internal/service/role"
)

type Handler struct {
	service *rolesvc.Service
}

func NewHandler(service *rolesvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:id", h.GetRole)
	}
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.ListPayload(c, "roles", roles, len(roles), nil)
}

func (h *Handler) GetRole(c *gin.Context) {
	role, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(role))
}
