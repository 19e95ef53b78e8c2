package catalog

import (
	"strings"

	"github.com/bookera/storefront-api/pkg/models"
)

// Books is the fixed storefront inventory, loaded once at process start.
// Records are read-only; callers receive copies.
var Books = []models.Book{
	{
		ID:          "1",
		Title:       "The 48 Laws of Power",
		Author:      "Robert Greene",
		Price:       1500,
		Category:    "Mindset",
		Image:       "https://m.media-amazon.com/images/I/71aG+xDKSYL._AC_UF1000,1000_QL80_.jpg",
		Description: "Amoral, cunning, ruthless, and instructive, this multi-million-copy New York Times bestseller is the definitive manual for anyone interested in gaining, observing, or defending against ultimate control.",
		Rating:      4.8,
		Reviews:     2450,
		Bestseller:  true,
	},
	{
		ID:          "2",
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Price:       1200,
		Category:    "Mindset",
		Image:       "https://m.media-amazon.com/images/I/81wgcld4wxL._AC_UF1000,1000_QL80_.jpg",
		Description: "No matter your goals, Atomic Habits offers a proven framework for improving--every day.",
		Rating:      4.9,
		Reviews:     5000,
		Bestseller:  true,
	},
	{
		ID:          "3",
		Title:       "Rich Dad Poor Dad",
		Author:      "Robert T. Kiyosaki",
		Price:       1000,
		Category:    "Wealth",
		Image:       "https://m.media-amazon.com/images/I/81bsw6fnUiL._AC_UF1000,1000_QL80_.jpg",
		Description: "Rich Dad Poor Dad is Robert's story of growing up with two dads — his real father and the father of his best friend, his rich dad — and the ways in which both men shaped his thoughts about money and investing.",
		Rating:      4.7,
		Reviews:     3200,
		Bestseller:  true,
	},
	{
		ID:          "4",
		Title:       "Think and Grow Rich",
		Author:      "Napoleon Hill",
		Price:       950,
		Category:    "Wealth",
		Image:       "https://m.media-amazon.com/images/I/71UypkUjStL._AC_UF1000,1000_QL80_.jpg",
		Description: "The landmark bestseller that establishes Napoleon Hill as America's most beloved motivational author.",
		Rating:      4.6,
		Reviews:     1800,
	},
	{
		ID:          "5",
		Title:       "The Psychology of Money",
		Author:      "Morgan Housel",
		Price:       1350,
		Category:    "Business",
		Image:       "https://m.media-amazon.com/images/I/81Dky+tD+pL._AC_UF1000,1000_QL80_.jpg",
		Description: "Timeless lessons on wealth, greed, and happiness doing well with money isn't necessarily about what you know. It's about how you behave.",
		Rating:      4.9,
		Reviews:     2100,
	},
	{
		ID:          "6",
		Title:       "Zero to One",
		Author:      "Peter Thiel",
		Price:       1600,
		Category:    "Business",
		Image:       "https://m.media-amazon.com/images/I/71uAI28kJuL._AC_UF1000,1000_QL80_.jpg",
		Description: "The great secret of our time is that there are still uncharted frontiers to explore and new inventions to create.",
		Rating:      4.5,
		Reviews:     900,
	},
}

var mockReviews = []models.Review{
	{ID: "1", User: "Ali Khan", Rating: 5, Comment: "Life changing book!", Date: "2023-10-12"},
	{ID: "2", User: "Sara Ahmed", Rating: 4, Comment: "Great insights but a bit lengthy.", Date: "2023-11-05"},
}

// All returns a copy of the full catalog.
func All() []models.Book {
	books := make([]models.Book, len(Books))
	copy(books, Books)
	return books
}

// ByID looks up a single book by its identifier.
func ByID(id string) (models.Book, bool) {
	for _, b := range Books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// Bestsellers returns the books flagged as bestsellers.
func Bestsellers() []models.Book {
	var books []models.Book
	for _, b := range Books {
		if b.Bestseller {
			books = append(books, b)
		}
	}
	return books
}

// Filter returns books whose title or author matches query (case-insensitive
// substring) and whose category matches. Empty query matches everything, as
// does the "All" category.
func Filter(query, category string) []models.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	books := make([]models.Book, 0, len(Books))
	for _, b := range Books {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q)
		matchesCategory := category == "" || category == "All" || b.Category == category
		if matchesQuery && matchesCategory {
			books = append(books, b)
		}
	}
	return books
}

// Categories returns "All" followed by the distinct catalog categories in
// first-seen order.
func Categories() []string {
	categories := []string{"All"}
	seen := map[string]bool{}
	for _, b := range Books {
		if !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	return categories
}

// Titles returns every title in the catalog, used to scope the concierge
// system prompt to books actually in stock.
func Titles() []string {
	titles := make([]string, len(Books))
	for i, b := range Books {
		titles[i] = b.Title
	}
	return titles
}

// ReviewsFor returns the reader reviews for a book.
func ReviewsFor(id string) []models.Review {
	if _, ok := ByID(id); !ok {
		return nil
	}
	reviews := make([]models.Review, len(mockReviews))
	copy(reviews, mockReviews)
	return reviews
}
