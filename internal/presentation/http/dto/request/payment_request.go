package request

// ApplyPaymentRequest represents a customer payment request. Amount is
// decimal dollars and is allocated oldest sale first.
type ApplyPaymentRequest struct {
	CustomerID string  `json:"customer_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}
