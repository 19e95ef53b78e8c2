package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bookera/storefront-api/pkg/models"
)

// ToastDuration is how long a notification stays visible before it
// auto-dismisses. A new toast cancels the pending timer and restarts it.
const ToastDuration = 3 * time.Second

// EventKind identifies which slice of store state changed.
type EventKind string

const (
	CartChanged     EventKind = "cart"
	WishlistChanged EventKind = "wishlist"
	ThemeChanged    EventKind = "theme"
	DiscountChanged EventKind = "discount"
	ToastShown      EventKind = "toast"
	ToastCleared    EventKind = "toast_cleared"
)

// Event is delivered to subscribers after each mutation.
type Event struct {
	Kind   EventKind
	Detail string
}

// Store is the single source of truth for cart, wishlist, theme, discount and
// the transient notification. All state lives in process memory and is
// discarded on teardown.
type Store struct {
	mu          sync.Mutex
	cart        []models.CartItem
	wishlist    []models.Book
	darkMode    bool
	discount    float64
	toast       string
	toastTimer  *time.Timer
	toastSeq    int
	subscribers []func(Event)
}

var active *Store

// Init creates the process-wide store. The theme is seeded once from the
// ambient COLOR_SCHEME preference.
func Init() *Store {
	active = New()
	return active
}

// Use returns the active store. Calling it before Init is a programming
// defect, not a runtime condition, so it panics.
func Use() *Store {
	if active == nil {
		panic("store: Use called before Init")
	}
	return active
}

// New builds a standalone store. Production code goes through Init/Use; tests
// construct their own.
func New() *Store {
	return &Store{
		darkMode: os.Getenv("COLOR_SCHEME") == "dark",
	}
}

// Subscribe registers fn to be called after every state change. Subscribers
// run on the mutating goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// AddToCart inserts a new line with quantity 1, or increments the existing
// line for the same book. It always succeeds and always emits a toast.
func (s *Store) AddToCart(book models.Book) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == book.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, models.CartItem{Book: book, Quantity: 1})
	}
	s.mu.Unlock()
	s.notify(Event{Kind: CartChanged})
	s.ShowToast(fmt.Sprintf("Added %s to cart", book.Title))
}

// RemoveFromCart deletes the line matching id. No-op if absent.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Kind: CartChanged})
}

// UpdateQuantity adds delta to the matching line's quantity, flooring at 1.
// No-op if there is no matching line.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			newQty := s.cart[i].Quantity + delta
			if newQty < 1 {
				newQty = 1
			}
			s.cart[i].Quantity = newQty
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Kind: CartChanged})
}

// ClearCart empties the cart and resets the discount. Called on successful
// order completion.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.discount = 0
	s.mu.Unlock()
	s.notify(Event{Kind: CartChanged})
}

// AddToWishlist toggles membership: present books are removed, absent books
// are added. Each direction emits its own toast.
func (s *Store) AddToWishlist(book models.Book) {
	s.mu.Lock()
	removed := false
	for i := range s.wishlist {
		if s.wishlist[i].ID == book.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.wishlist = append(s.wishlist, book)
	}
	s.mu.Unlock()
	s.notify(Event{Kind: WishlistChanged})
	if removed {
		s.ShowToast("Removed from wishlist")
	} else {
		s.ShowToast("Added to wishlist")
	}
}

// IsInWishlist reports whether the book is wishlisted.
func (s *Store) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.wishlist {
		if b.ID == id {
			return true
		}
	}
	return false
}

// SetDiscount replaces the active discount rate unconditionally.
func (s *Store) SetDiscount(rate float64) {
	s.mu.Lock()
	s.discount = rate
	s.mu.Unlock()
	s.notify(Event{Kind: DiscountChanged})
}

// ToggleTheme flips dark mode. Subscribers reflect the change into the
// document-level presentation state.
func (s *Store) ToggleTheme() bool {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	dark := s.darkMode
	s.mu.Unlock()
	detail := "light"
	if dark {
		detail = "dark"
	}
	s.notify(Event{Kind: ThemeChanged, Detail: detail})
	return dark
}

// ShowToast replaces any pending notification and restarts the auto-dismiss
// timer. The previous timer is cancelled first so the new message is not
// dismissed prematurely.
func (s *Store) ShowToast(msg string) {
	s.mu.Lock()
	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}
	s.toast = msg
	s.toastSeq++
	seq := s.toastSeq
	s.toastTimer = time.AfterFunc(ToastDuration, func() {
		s.dismissToast(seq)
	})
	s.mu.Unlock()
	s.notify(Event{Kind: ToastShown, Detail: msg})
}

func (s *Store) dismissToast(seq int) {
	s.mu.Lock()
	// A newer toast owns the slot; leave it alone.
	if seq != s.toastSeq {
		s.mu.Unlock()
		return
	}
	s.toast = ""
	s.toastTimer = nil
	s.mu.Unlock()
	s.notify(Event{Kind: ToastCleared})
}

// CartTotal is the sum of price times quantity over all lines, recomputed on
// every read.
func (s *Store) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.cart {
		total += item.Subtotal()
	}
	return total
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartSize returns the number of distinct lines.
func (s *Store) CartSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// Wishlist returns a copy of the wishlisted books.
func (s *Store) Wishlist() []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := make([]models.Book, len(s.wishlist))
	copy(books, s.wishlist)
	return books
}

// Discount returns the active discount rate.
func (s *Store) Discount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount
}

// DarkMode reports the current theme.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// Toast returns the pending notification, if any.
func (s *Store) Toast() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toast, s.toast != ""
}
