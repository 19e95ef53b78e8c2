package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookera/storefront-api/pkg/models"
	"github.com/bookera/storefront-api/pkg/store"
)

func book(id string, price int) models.Book {
	return models.Book{ID: id, Title: "Book " + id, Author: "Author " + id, Price: price}
}

func TestStore_AddToCart(t *testing.T) {
	t.Run("one_line_per_distinct_book", func(t *testing.T) {
		s := store.New()
		b1 := book("1", 1500)
		b2 := book("2", 1200)

		s.AddToCart(b1)
		s.AddToCart(b1)
		s.AddToCart(b2)
		s.AddToCart(b1)

		cart := s.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, 3, cart[0].Quantity)
		assert.Equal(t, 1, cart[1].Quantity)
	})

	t.Run("emits_toast", func(t *testing.T) {
		s := store.New()
		s.AddToCart(book("1", 1500))

		msg, visible := s.Toast()
		assert.True(t, visible)
		assert.Equal(t, "Added Book 1 to cart", msg)
	})
}

func TestStore_UpdateQuantity(t *testing.T) {
	t.Run("floors_at_one", func(t *testing.T) {
		s := store.New()
		s.AddToCart(book("1", 1000))

		s.UpdateQuantity("1", -100)

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("applies_positive_delta", func(t *testing.T) {
		s := store.New()
		s.AddToCart(book("1", 1000))

		s.UpdateQuantity("1", 4)

		assert.Equal(t, 5, s.Cart()[0].Quantity)
	})

	t.Run("noop_without_matching_line", func(t *testing.T) {
		s := store.New()
		s.AddToCart(book("1", 1000))

		s.UpdateQuantity("missing", 3)

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})
}

func TestStore_RemoveFromCart(t *testing.T) {
	s := store.New()
	s.AddToCart(book("1", 1000))
	s.AddToCart(book("2", 1200))

	s.RemoveFromCart("1")
	s.RemoveFromCart("not-there")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ID)
}

func TestStore_CartTotal(t *testing.T) {
	s := store.New()
	assert.Equal(t, 0, s.CartTotal())

	s.AddToCart(book("1", 1500))
	s.AddToCart(book("1", 1500))
	s.AddToCart(book("2", 1200))

	assert.Equal(t, 1500*2+1200, s.CartTotal())
}

func TestStore_ClearCart(t *testing.T) {
	s := store.New()
	s.AddToCart(book("1", 1500))
	s.SetDiscount(0.10)

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Zero(t, s.Discount())
}

func TestStore_WishlistToggle(t *testing.T) {
	s := store.New()
	b := book("1", 1500)

	s.AddToWishlist(b)
	assert.True(t, s.IsInWishlist("1"))
	msg, _ := s.Toast()
	assert.Equal(t, "Added to wishlist", msg)

	s.AddToWishlist(b)
	assert.False(t, s.IsInWishlist("1"))
	msg, _ = s.Toast()
	assert.Equal(t, "Removed from wishlist", msg)
	assert.Empty(t, s.Wishlist())
}

func TestStore_Toast_Preemption(t *testing.T) {
	s := store.New()

	s.ShowToast("first")
	s.ShowToast("second")

	msg, visible := s.Toast()
	assert.True(t, visible)
	assert.Equal(t, "second", msg)
}

func TestStore_ToggleTheme(t *testing.T) {
	s := store.New()
	initial := s.DarkMode()

	assert.Equal(t, !initial, s.ToggleTheme())
	assert.Equal(t, initial, s.ToggleTheme())
}

func TestStore_Subscribe(t *testing.T) {
	s := store.New()
	var events []store.EventKind
	s.Subscribe(func(ev store.Event) {
		events = append(events, ev.Kind)
	})

	s.AddToCart(book("1", 1000))
	s.SetDiscount(0.10)
	s.ToggleTheme()

	assert.Contains(t, events, store.CartChanged)
	assert.Contains(t, events, store.ToastShown)
	assert.Contains(t, events, store.DiscountChanged)
	assert.Contains(t, events, store.ThemeChanged)
}
