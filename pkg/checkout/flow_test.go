package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookera/storefront-api/pkg/checkout"
	"github.com/bookera/storefront-api/pkg/models"
	"github.com/bookera/storefront-api/pkg/pricing"
	"github.com/bookera/storefront-api/pkg/store"
)

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FullName: "Ali Khan",
		Phone:    "03001234567",
		Address:  "House 12, Street 4, Model Town",
		Province: "Punjab",
		City:     "Lahore",
	}
}

func storeWithCart(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.AddToCart(models.Book{ID: "1", Title: "The 48 Laws of Power", Price: 1500})
	s.AddToCart(models.Book{ID: "1", Title: "The 48 Laws of Power", Price: 1500})
	s.AddToCart(models.Book{ID: "2", Title: "Atomic Habits", Price: 1200})
	return s
}

func TestFlow_SubmitShipping(t *testing.T) {
	t.Run("empty_cart_not_enterable", func(t *testing.T) {
		f := checkout.NewFlow(store.New())

		err := f.SubmitShipping(validShipping())

		assert.ErrorIs(t, err, checkout.ErrCartEmpty)
		assert.Equal(t, checkout.StateCollectingShipping, f.State())
	})

	t.Run("valid_details_advance_to_payment", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))

		err := f.SubmitShipping(validShipping())

		require.NoError(t, err)
		assert.Equal(t, checkout.StateConfirmingPayment, f.State())
		assert.Equal(t, "03001234567", f.Shipping().Phone)
	})

	t.Run("phone_validation", func(t *testing.T) {
		cases := []struct {
			phone string
			valid bool
		}{
			{"03001234567", true},
			{"3001234567", false},  // missing leading 0
			{"0300123456", false},  // 10 digits
			{"030012345678", false},
			{"04001234567", false},
			{"03OO1234567", false},
		}

		for _, tc := range cases {
			f := checkout.NewFlow(storeWithCart(t))
			details := validShipping()
			details.Phone = tc.phone

			err := f.SubmitShipping(details)
			if tc.valid {
				assert.NoError(t, err, tc.phone)
				continue
			}

			var fieldErrs checkout.FieldErrors
			require.ErrorAs(t, err, &fieldErrs, tc.phone)
			assert.Equal(t, "phone", fieldErrs[0].Field, tc.phone)
			// A rejected submission leaves the state untouched.
			assert.Equal(t, checkout.StateCollectingShipping, f.State(), tc.phone)
		}
	})

	t.Run("blank_city_defaults_to_province_first_option", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))
		details := validShipping()
		details.Province = "Sindh"
		details.City = ""

		require.NoError(t, f.SubmitShipping(details))
		assert.Equal(t, "Karachi", f.Shipping().City)
	})

	t.Run("city_outside_province_rejected", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))
		details := validShipping()
		details.Province = "Sindh"
		details.City = "Lahore"

		var fieldErrs checkout.FieldErrors
		require.ErrorAs(t, f.SubmitShipping(details), &fieldErrs)
		assert.Equal(t, "city", fieldErrs[0].Field)
	})

	t.Run("unknown_province_rejected", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))
		details := validShipping()
		details.Province = "Atlantis"
		details.City = ""

		var fieldErrs checkout.FieldErrors
		require.ErrorAs(t, f.SubmitShipping(details), &fieldErrs)
		assert.Equal(t, "province", fieldErrs[0].Field)
	})
}

func TestFlow_ConfirmPayment(t *testing.T) {
	t.Run("rejected_before_shipping", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))
		f.CommitDelay = 0

		_, err := f.ConfirmPayment(context.Background())
		assert.ErrorIs(t, err, checkout.ErrWrongState)
	})

	t.Run("completes_order_and_clears_cart", func(t *testing.T) {
		s := storeWithCart(t)
		s.SetDiscount(pricing.PromoDiscount)

		f := checkout.NewFlow(s)
		f.CommitDelay = 0
		require.NoError(t, f.SubmitShipping(validShipping()))

		order, err := f.ConfirmPayment(context.Background())
		require.NoError(t, err)

		// 4200 subtotal, 10% off, 250 shipping.
		assert.Equal(t, 4030, order.Total)
		assert.GreaterOrEqual(t, order.ID, 0)
		assert.Less(t, order.ID, 1_000_000)

		assert.Equal(t, checkout.StateCompleted, f.State())
		assert.Empty(t, s.Cart())
		assert.Zero(t, s.Discount())
	})

	t.Run("cancelled_context_aborts_commit", func(t *testing.T) {
		f := checkout.NewFlow(storeWithCart(t))
		require.NoError(t, f.SubmitShipping(validShipping()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.ConfirmPayment(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, checkout.StateConfirmingPayment, f.State())
	})
}

func TestFlow_BackAndReset(t *testing.T) {
	f := checkout.NewFlow(storeWithCart(t))
	require.NoError(t, f.SubmitShipping(validShipping()))

	f.Back()
	assert.Equal(t, checkout.StateCollectingShipping, f.State())

	require.NoError(t, f.SubmitShipping(validShipping()))
	f.Reset()
	assert.Equal(t, checkout.StateCollectingShipping, f.State())
	assert.Empty(t, f.Shipping().Phone)
}

func TestCitiesFor(t *testing.T) {
	cities, ok := checkout.CitiesFor("Punjab")
	require.True(t, ok)
	assert.Contains(t, cities, "Lahore")

	_, ok = checkout.CitiesFor("Atlantis")
	assert.False(t, ok)

	city, ok := checkout.DefaultCity("Islamabad Capital Territory")
	require.True(t, ok)
	assert.Equal(t, "Islamabad", city)
}
