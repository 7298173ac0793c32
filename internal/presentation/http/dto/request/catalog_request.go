package request

// CreateItemRequest represents a quick item creation request.
// Money fields are decimal dollars; handlers convert to cents.
type CreateItemRequest struct {
	UPC   string  `json:"upc" binding:"required,min=8,max=50"`
	Name  string  `json:"name" binding:"required,min=2,max=200"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

// UpsertItemRequest represents a full catalog row upsert request
type UpsertItemRequest struct {
	UPC         string  `json:"upc" binding:"required,max=50"`
	Brand       string  `json:"brand" binding:"omitempty,max=200"`
	Product     string  `json:"product" binding:"omitempty,max=200"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Update      bool    `json:"update"` // update in place when the UPC exists
}

// UpdatePriceRequest represents a price change request
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// ItemFilterRequest represents catalog listing parameters
type ItemFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
