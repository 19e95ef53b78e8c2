package models

// ShippingDetails is the first checkout step. Phone must be a local 11-digit
// mobile number (03XXXXXXXXX); province and city are constrained to the fixed
// province list in pkg/checkout.
type ShippingDetails struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Phone    string `json:"phone" validate:"required,pk_mobile"`
	Address  string `json:"address" validate:"required,min=5,max=300"`
	Province string `json:"province" validate:"required"`
	City     string `json:"city"`
}

// Order is assembled once at checkout completion and handed to the
// confirmation view. It is never stored; there is no order history.
type Order struct {
	ID    int `json:"order_id"`
	Total int `json:"total"`
}
