package models

// Cart models for the in-memory client-state store

type CartItem struct {
	Book
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (ci CartItem) Subtotal() int {
	return ci.Price * ci.Quantity
}

type AddToCartRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	// Delta is added to the current quantity; the result floors at 1.
	Delta int `json:"delta" binding:"required"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type ToggleWishlistRequest struct {
	BookID string `json:"book_id" binding:"required"`
}
