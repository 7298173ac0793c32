package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"` // may span multiple lines
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	UPC       string  `json:"upc,omitempty"`
	IsAdHoc   bool    `json:"is_ad_hoc"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is not
// a database entity and is composed from sale data at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	SaleNo        string        `json:"sale_no"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	Paid          float64       `json:"paid"`
	Balance       float64       `json:"balance"`
	PaymentStatus string        `json:"payment_status"`
}
