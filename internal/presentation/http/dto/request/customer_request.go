package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Phone string `json:"phone" binding:"required,min=7,max=20"`
	Name  string `json:"name" binding:"required,min=2,max=200"`
}

// CustomerFilterRequest represents customer listing parameters
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
