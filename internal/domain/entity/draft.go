package entity

import (
	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// DraftLineKind tags a draft line as catalog-backed or ad-hoc
type DraftLineKind int

const (
	LineCatalog DraftLineKind = iota
	LineAdHoc
)

// DraftLine is one editable line of an in-progress sale
type DraftLine struct {
	Kind            DraftLineKind `json:"kind"`
	Name            string        `json:"name"`
	UPC             string        `json:"upc,omitempty"` // set only for catalog lines
	Quantity        int           `json:"quantity"`
	UnitPrice       int64         `json:"unit_price"`       // cents
	DiscountedPrice int64         `json:"discounted_price"` // cents
}

// Total returns the line total in cents
func (l *DraftLine) Total() int64 {
	return int64(l.Quantity) * l.DiscountedPrice
}

// SaleDraft is a mutable, not-yet-persisted sale owned by the caller for
// the duration of one checkout. Finalizing a draft persists it as a Sale
// with its line items.
type SaleDraft struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	Lines      []DraftLine `json:"lines"`
}

// NewSaleDraft starts an empty draft for the given customer
func NewSaleDraft(customerID uuid.UUID) *SaleDraft {
	return &SaleDraft{CustomerID: customerID}
}

// AddCatalogLine adds a catalog item to the draft. If a catalog line with
// the same UPC already exists, its quantity is incremented instead and the
// line total is recomputed at the line's existing discounted price, so a
// manual discount survives rescanning the same item.
func (d *SaleDraft) AddCatalogLine(item *Item, quantity int) error {
	if quantity <= 0 {
		return apperror.NewValidationError("Quantity must be positive")
	}
	for i := range d.Lines {
		if d.Lines[i].Kind == LineCatalog && d.Lines[i].UPC == item.UPC {
			d.Lines[i].Quantity += quantity
			return nil
		}
	}
	d.Lines = append(d.Lines, DraftLine{
		Kind:            LineCatalog,
		Name:            item.DisplayName(),
		UPC:             item.UPC,
		Quantity:        quantity,
		UnitPrice:       item.Price,
		DiscountedPrice: item.Price,
	})
	return nil
}

// AddAdHocLine adds a manually priced line with no catalog backing.
// Ad-hoc lines never merge, even with identical names.
func (d *SaleDraft) AddAdHocLine(name string, quantity int, unitPrice int64) error {
	if name == "" {
		return apperror.NewValidationError("Item name is required")
	}
	if quantity <= 0 {
		return apperror.NewValidationError("Quantity must be positive")
	}
	if unitPrice <= 0 {
		return apperror.NewValidationError("Price must be positive")
	}
	d.Lines = append(d.Lines, DraftLine{
		Kind:            LineAdHoc,
		Name:            name,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountedPrice: unitPrice,
	})
	return nil
}

// AdjustLine overwrites the quantity and discounted price of the line at
// index (manual discount or correction)
func (d *SaleDraft) AdjustLine(index, quantity int, price int64) error {
	if index < 0 || index >= len(d.Lines) {
		return apperror.NewValidationError("No such line")
	}
	if quantity <= 0 {
		return apperror.NewValidationError("Quantity must be positive")
	}
	if price <= 0 {
		return apperror.NewValidationError("Price must be positive")
	}
	d.Lines[index].Quantity = quantity
	d.Lines[index].DiscountedPrice = price
	return nil
}

// RemoveLine removes the line at index
func (d *SaleDraft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return apperror.NewValidationError("No such line")
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// Total returns the draft total in cents, recomputed from the lines
func (d *SaleDraft) Total() int64 {
	var total int64
	for i := range d.Lines {
		total += d.Lines[i].Total()
	}
	return total
}

// Empty reports whether the draft has no lines
func (d *SaleDraft) Empty() bool {
	return len(d.Lines) == 0
}
