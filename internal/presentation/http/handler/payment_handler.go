package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Apply handles allocating a customer payment across outstanding sales,
// oldest sale first
func (h *PaymentHandler) Apply(c *gin.Context) {
	var req request.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer_id")
		return
	}

	result, err := h.paymentService.ApplyPayment(c.Request.Context(), customerID, toCents(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment applied successfully", result)
}
