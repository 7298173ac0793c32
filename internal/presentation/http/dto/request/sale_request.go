package request

// SaleLineRequest represents one line of a sale being finalized. Catalog
// lines carry a UPC; ad-hoc lines carry a name and unit price instead.
type SaleLineRequest struct {
	UPC       string  `json:"upc" binding:"omitempty,max=50"`
	Name      string  `json:"name" binding:"omitempty,max=200"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice float64 `json:"unit_price" binding:"omitempty,gt=0"`
	AdHoc     bool    `json:"ad_hoc"`
}

// FinalizeSaleRequest represents a sale finalization request
type FinalizeSaleRequest struct {
	CustomerID    string            `json:"customer_id" binding:"required,uuid"`
	PaymentStatus string            `json:"payment_status" binding:"required"`
	PaidAmount    float64           `json:"paid_amount" binding:"min=0"`
	Lines         []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale history listing parameters
type SaleFilterRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
