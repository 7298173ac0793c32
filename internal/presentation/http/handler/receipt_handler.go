package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	cfg            config.ReceiptConfig
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, cfg config.ReceiptConfig) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, cfg: cfg}
}

// Get handles returning a sale's receipt, rendered as fixed-width text
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.receiptService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	text := service.FormatReceipt(r, service.FormatOptions{Width: h.cfg.Width, TaxRate: h.cfg.TaxRate})
	response.OK(c, "Receipt retrieved successfully", gin.H{
		"receipt": r,
		"text":    text,
	})
}

// Print handles sending a sale's receipt to the configured printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.receiptService.PrintSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", nil)
}

// Status handles reporting printer connectivity
func (h *ReceiptHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", gin.H{
		"connected": h.receiptService.PrinterStatus(),
	})
}

// TestPrint handles sending an alignment test page to the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	if err := h.receiptService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page printed successfully", nil)
}
