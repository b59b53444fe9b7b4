package invoice

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/model"
	invoicesvc "github.com/medhq/hms-api/internal/service/invoice"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

type Handler struct {
	service *invoicesvc.Service
}

func NewHandler(service *invoicesvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.CreateInvoice)
		invoices.GET("/:id", h.GetInvoice)
	}
}

// ListInvoices returns the filtered invoices together with the partition
// summary computed over the same filtered set, so the totals always match
// what the caller sees.
func (h *Handler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	summary := h.service.Summarize(invoices)
	handler.ListPayload(c, "invoices", invoices, len(invoices), gin.H{"summary": summary})
}

func (h *Handler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(invoice))
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest("invalid invoice payload", err))
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(invoice))
}
