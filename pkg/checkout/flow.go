package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bookera/storefront-api/pkg/models"
	"github.com/bookera/storefront-api/pkg/pricing"
	"github.com/bookera/storefront-api/pkg/store"
)

// State is the checkout flow position.
type State string

const (
	StateCollectingShipping State = "collecting_shipping"
	StateConfirmingPayment  State = "confirming_payment"
	StateCompleted          State = "completed"
)

// DefaultCommitDelay stands in for the round-trip of a real order-submission
// call. Replace the timer with the actual network commit when one exists.
const DefaultCommitDelay = 800 * time.Millisecond

var (
	ErrCartEmpty  = errors.New("checkout: cart is empty")
	ErrWrongState = errors.New("checkout: transition not allowed from current state")
)

// Local 11-digit mobile format, e.g. 03001234567.
var mobilePattern = regexp.MustCompile(`^03\d{9}$`)

// FieldError is a single rejected shipping field, surfaced inline to the
// form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FieldErrors carries every rejected field of a shipping submission.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	return fmt.Sprintf("checkout: %d invalid shipping field(s)", len(fe))
}

// Flow is the two-step checkout state machine: shipping details, then
// cash-on-delivery confirmation. Only one checkout runs per store instance.
type Flow struct {
	// CommitDelay is how long the simulated order commit takes.
	CommitDelay time.Duration

	mu       sync.Mutex
	state    State
	shipping models.ShippingDetails
	store    *store.Store
	validate *validator.Validate
}

func NewFlow(s *store.Store) *Flow {
	v := validator.New()
	// Registered tag backing the phone rule on models.ShippingDetails.
	_ = v.RegisterValidation("pk_mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return &Flow{
		CommitDelay: DefaultCommitDelay,
		state:       StateCollectingShipping,
		store:       s,
		validate:    v,
	}
}

// State returns the current flow position.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Shipping returns the collected shipping details.
func (f *Flow) Shipping() models.ShippingDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shipping
}

// SubmitShipping validates the shipping form and, on success, advances the
// flow to payment confirmation. A rejected submission leaves the state
// untouched and returns the offending fields. Submitting after a completed
// order starts a fresh checkout cycle.
func (f *Flow) SubmitShipping(details models.ShippingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.store.CartSize() == 0 {
		return ErrCartEmpty
	}

	// A blank city after a province change falls back to the province's
	// first valid option.
	if details.City == "" {
		if city, ok := DefaultCity(details.Province); ok {
			details.City = city
		}
	}

	var fieldErrs FieldErrors
	if err := f.validate.Struct(details); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, ve := range verrs {
			fieldErrs = append(fieldErrs, mapFieldError(ve))
		}
	}

	if _, ok := CitiesFor(details.Province); details.Province != "" && !ok {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "province",
			Message: "Unknown province",
			Code:    "invalid_province",
		})
	} else if details.Province != "" && details.City != "" && !cityInProvince(details.Province, details.City) {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "city",
			Message: "City is not deliverable in the selected province",
			Code:    "invalid_city",
		})
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	f.shipping = details
	f.state = StateConfirmingPayment
	return nil
}

// Back returns from payment confirmation to the shipping form.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateConfirmingPayment {
		f.state = StateCollectingShipping
	}
}

// ConfirmPayment completes the order: after the simulated commit delay it
// computes the final total, clears the cart (which also resets the discount),
// and returns the confirmation payload. Cash on delivery is the only payment
// method, so the transition itself is unconditional.
func (f *Flow) ConfirmPayment(ctx context.Context) (models.Order, error) {
	f.mu.Lock()
	if f.state != StateConfirmingPayment {
		f.mu.Unlock()
		return models.Order{}, ErrWrongState
	}
	if f.store.CartSize() == 0 {
		f.mu.Unlock()
		return models.Order{}, ErrCartEmpty
	}
	delay := f.CommitDelay
	f.mu.Unlock()

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return models.Order{}, ctx.Err()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateConfirmingPayment {
		return models.Order{}, ErrWrongState
	}

	quote := pricing.QuoteFor(f.store.CartTotal(), f.store.Discount())
	f.store.ClearCart()
	f.state = StateCompleted

	return models.Order{
		ID:    rand.Intn(1_000_000),
		Total: quote.Total,
	}, nil
}

// Reset returns the flow to the shipping step for a new checkout.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateCollectingShipping
	f.shipping = models.ShippingDetails{}
}

func mapFieldError(ve validator.FieldError) FieldError {
	switch ve.Field() {
	case "Phone":
		return FieldError{
			Field:   "phone",
			Message: "Phone must be an 11-digit mobile number starting with 03",
			Code:    "invalid_phone",
		}
	case "FullName":
		return FieldError{Field: "full_name", Message: "Full name is required", Code: ve.Tag()}
	case "Address":
		return FieldError{Field: "address", Message: "A complete street address is required", Code: ve.Tag()}
	case "Province":
		return FieldError{Field: "province", Message: "Province is required", Code: ve.Tag()}
	default:
		return FieldError{Field: ve.Field(), Message: "Invalid value", Code: ve.Tag()}
	}
}
