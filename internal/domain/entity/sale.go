package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a finalized sale. It is created atomically with its
// line items; afterwards only PaidAmount and PaymentStatus change, and
// only through payment allocation.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	TotalAmount   int64              `gorm:"not null" json:"-"`           // Stored in cents
	PaidAmount    int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:pay_later" json:"payment_status"`
	SaleDate      time.Time          `gorm:"not null;index" json:"sale_date"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []SaleLineItem `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
		PaidAmount  float64 `json:"paid_amount"`
		Balance     float64 `json:"balance"`
	}{
		Alias:       Alias(s),
		TotalAmount: float64(s.TotalAmount) / 100,
		PaidAmount:  float64(s.PaidAmount) / 100,
		Balance:     float64(s.Outstanding()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Outstanding returns the unpaid remainder in cents
func (s *Sale) Outstanding() int64 {
	return s.TotalAmount - s.PaidAmount
}

// SaleLineItem represents one line of a finalized sale. Lines never
// change after the sale is persisted; all editing happens on the draft.
type SaleLineItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID          uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemName        string    `gorm:"size:200;not null" json:"item_name"`
	UPC             string    `gorm:"size:50;column:upc" json:"upc,omitempty"` // empty for ad-hoc lines
	Quantity        int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice       int64     `gorm:"not null" json:"-"` // Stored in cents
	DiscountedPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	IsAdHoc         bool      `gorm:"not null;default:false" json:"is_ad_hoc"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLineItem) MarshalJSON() ([]byte, error) {
	type Alias SaleLineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice       float64 `json:"unit_price"`
		DiscountedPrice float64 `json:"discounted_price"`
		Total           float64 `json:"total"`
	}{
		Alias:           Alias(l),
		UnitPrice:       float64(l.UnitPrice) / 100,
		DiscountedPrice: float64(l.DiscountedPrice) / 100,
		Total:           float64(l.Total()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale line item
func (l *SaleLineItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLineItem model
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}

// Total returns the line total in cents (quantity x discounted price)
func (l *SaleLineItem) Total() int64 {
	return int64(l.Quantity) * l.DiscountedPrice
}
