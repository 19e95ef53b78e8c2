package models

// Book represents a title in the storefront catalog. The catalog is fixed at
// process start; Book values are never mutated after construction.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       int     `json:"price"` // whole rupees
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Bestseller  bool    `json:"bestseller,omitempty"`
}

// Review is a reader review shown on the product detail page.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}
