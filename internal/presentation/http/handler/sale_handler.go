package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Finalize handles building a draft from the requested lines and
// committing it to the ledger in one call. The draft never outlives the
// request; a failed finalize leaves no ledger rows behind.
func (h *SaleHandler) Finalize(c *gin.Context) {
	var req request.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer_id")
		return
	}

	lines := make([]service.DraftLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.DraftLineInput{
			UPC:       l.UPC,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: toCents(l.UnitPrice),
			AdHoc:     l.AdHoc,
		})
	}

	draft, err := h.saleService.BuildDraft(c.Request.Context(), customerID, lines)
	if err != nil {
		response.Error(c, err)
		return
	}

	sale, err := h.saleService.Finalize(c.Request.Context(), draft,
		enum.PaymentStatus(req.PaymentStatus), toCents(req.PaidAmount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale finalized successfully", sale)
}

// Get handles retrieving a single sale with its lines
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}
