package pricing

import (
	"math"
	"strings"
)

// Storefront pricing policy. Amounts are whole rupees.
const (
	FreeShippingThreshold = 5000
	FlatShippingFee       = 250

	// The single active promotion. No stacking, no expiry.
	PromoCode     = "WAQAS10"
	PromoDiscount = 0.10
)

// Quote is the derived price breakdown consumed by the cart and checkout
// views.
type Quote struct {
	Subtotal           int     `json:"subtotal"`
	DiscountRate       float64 `json:"discount_rate"`
	DiscountAmount     int     `json:"discount_amount"`
	DiscountedSubtotal int     `json:"discounted_subtotal"`
	Shipping           int     `json:"shipping"`
	Total              int     `json:"total"`
}

// QuoteFor derives the full price breakdown from the cart total and the
// active discount rate. Free shipping keys off the pre-discount subtotal,
// not the discounted amount, and only kicks in strictly above the threshold.
func QuoteFor(cartTotal int, discountRate float64) Quote {
	discountAmount := int(math.Round(float64(cartTotal) * discountRate))
	discountedSubtotal := cartTotal - discountAmount

	shipping := FlatShippingFee
	if cartTotal > FreeShippingThreshold {
		shipping = 0
	}

	return Quote{
		Subtotal:           cartTotal,
		DiscountRate:       discountRate,
		DiscountAmount:     discountAmount,
		DiscountedSubtotal: discountedSubtotal,
		Shipping:           shipping,
		Total:              discountedSubtotal + shipping,
	}
}

// MatchPromo validates a promo code, case-insensitively, against the single
// active code. On a match it returns the promotional rate; any other string
// returns (0, false) and callers must reset the active discount.
func MatchPromo(code string) (float64, bool) {
	if strings.EqualFold(strings.TrimSpace(code), PromoCode) {
		return PromoDiscount, true
	}
	return 0, false
}
