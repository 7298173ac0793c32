package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a catalog item. The UPC is stored in normalized
// (12-digit) form and is the item's natural external identifier.
//
// Brand/Product/Description are optional: rows created through the quick
// add flow carry only a product name, rows from catalog imports carry all
// three plus a cost.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UPC         string    `gorm:"size:50;unique;not null;column:upc" json:"upc"`
	Brand       string    `gorm:"size:100" json:"brand,omitempty"`
	Product     string    `gorm:"size:200;not null" json:"product"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Cost        int64     `gorm:"default:0" json:"-"` // Stored in cents
	Price       int64     `gorm:"not null" json:"-"`  // Stored in cents
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// DisplayName returns the name shown on sale lines and receipts.
// Falls back to brand + description for rows imported without a product name.
func (i *Item) DisplayName() string {
	if i.Product != "" {
		return i.Product
	}
	if i.Brand != "" && i.Description != "" {
		return i.Brand + " " + i.Description
	}
	if i.Brand != "" {
		return i.Brand
	}
	return i.Description
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (i *Item) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// GetCostDecimal returns the cost as a decimal (for display)
func (i *Item) GetCostDecimal() float64 {
	return float64(i.Cost) / 100
}

// MarshalJSON converts Item to JSON with decimal prices
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Cost  float64 `json:"cost"`
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Cost:  i.GetCostDecimal(),
		Price: i.GetPriceDecimal(),
	})
}
