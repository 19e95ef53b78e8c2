package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookera/storefront-api/pkg/pricing"
)

func TestQuoteFor_Shipping(t *testing.T) {
	t.Run("fee_charged_below_threshold", func(t *testing.T) {
		q := pricing.QuoteFor(4200, 0)
		assert.Equal(t, pricing.FlatShippingFee, q.Shipping)
	})

	t.Run("fee_charged_at_exact_threshold", func(t *testing.T) {
		// The threshold is strict-greater: a 5000 subtotal still pays.
		q := pricing.QuoteFor(5000, 0)
		assert.Equal(t, pricing.FlatShippingFee, q.Shipping)
	})

	t.Run("fee_waived_above_threshold", func(t *testing.T) {
		q := pricing.QuoteFor(5001, 0)
		assert.Zero(t, q.Shipping)
	})

	t.Run("threshold_uses_pre_discount_total", func(t *testing.T) {
		// 5100 discounted by 10% is 4590, but shipping stays free because
		// the check runs against the pre-discount subtotal.
		q := pricing.QuoteFor(5100, 0.10)
		assert.Zero(t, q.Shipping)
		assert.Equal(t, 4590, q.Total)
	})
}

func TestQuoteFor_EndToEnd(t *testing.T) {
	// P1 (1500) x2 + P2 (1200) x1 with the 10% promo applied.
	q := pricing.QuoteFor(4200, 0.10)

	assert.Equal(t, 4200, q.Subtotal)
	assert.Equal(t, 420, q.DiscountAmount)
	assert.Equal(t, 3780, q.DiscountedSubtotal)
	assert.Equal(t, 250, q.Shipping)
	assert.Equal(t, 4030, q.Total)
}

func TestQuoteFor_EmptyCart(t *testing.T) {
	q := pricing.QuoteFor(0, 0)
	assert.Zero(t, q.Subtotal)
	assert.Equal(t, pricing.FlatShippingFee, q.Shipping)
	assert.Equal(t, pricing.FlatShippingFee, q.Total)
}

func TestMatchPromo(t *testing.T) {
	t.Run("case_insensitive_match", func(t *testing.T) {
		for _, code := range []string{"WAQAS10", "waqas10", "WaQaS10", "  waqas10  "} {
			rate, ok := pricing.MatchPromo(code)
			assert.True(t, ok, code)
			assert.Equal(t, pricing.PromoDiscount, rate, code)
		}
	})

	t.Run("mismatch_returns_zero", func(t *testing.T) {
		for _, code := range []string{"WAQAS", "WAQAS100", "SAVE20", "", " "} {
			rate, ok := pricing.MatchPromo(code)
			assert.False(t, ok, code)
			assert.Zero(t, rate, code)
		}
	})
}
