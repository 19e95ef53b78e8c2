package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookera/storefront-api/pkg/ai"
	"github.com/bookera/storefront-api/pkg/catalog"
	"github.com/bookera/storefront-api/pkg/checkout"
	"github.com/bookera/storefront-api/pkg/global"
	"github.com/bookera/storefront-api/pkg/models"
	"github.com/bookera/storefront-api/pkg/pricing"
	"github.com/bookera/storefront-api/pkg/store"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"status":     "OK",
		"ai_enabled": ai.IsEnabled(),
	}))
}

// ========================
// catalog
// ========================

func GetAllBooks(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", "All")
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Filter(query, category)))
}

func GetBestsellers(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Bestsellers()))
}

func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Categories()))
}

func GetBookByID(c *gin.Context) {
	book, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Book not found", []global.ValidationError{
			{Field: "id", Message: "No book exists with this ID", Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(book))
}

func GetBookReviews(c *gin.Context) {
	reviews := catalog.ReviewsFor(c.Param("id"))
	if reviews == nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Book not found", []global.ValidationError{
			{Field: "id", Message: "No book exists with this ID", Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(reviews))
}

// ========================
// AI concierge
// ========================

// GenerateBookInsights returns a structured analysis, or an unavailable
// payload when the AI boundary fails. The client re-triggers to retry.
func GenerateBookInsights(c *gin.Context) {
	book, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Book not found", []global.ValidationError{
			{Field: "id", Message: "No book exists with this ID", Code: "not_found"},
		}))
		return
	}

	insights := ai.BookInsights(c.Request.Context(), book.Title, book.Author)
	if insights == nil {
		c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
			"available": false,
		}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"available": true,
		"insights":  insights,
	}))
}

func ConciergeChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	reply := ai.ChatWithConcierge(c.Request.Context(), req.History, req.Message)
	c.JSON(http.StatusOK, global.SuccessResponse(models.ChatResponse{Reply: reply}))
}

// ========================
// cart
// ========================

func cartPayload(s *store.Store) map[string]interface{} {
	items := s.Cart()
	quote := pricing.QuoteFor(s.CartTotal(), s.Discount())
	return map[string]interface{}{
		"items": items,
		"quote": quote,
	}
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(store.Use())))
}

func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "book_id", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	book, ok := catalog.ByID(req.BookID)
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Book not found", []global.ValidationError{
			{Field: "book_id", Message: "No book exists with this ID", Code: "not_found"},
		}))
		return
	}

	s := store.Use()
	s.AddToCart(book)
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(s)))
}

func UpdateCartItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "delta", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	s := store.Use()
	s.UpdateQuantity(c.Param("id"), req.Delta)
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(s)))
}

func RemoveFromCart(c *gin.Context) {
	s := store.Use()
	s.RemoveFromCart(c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(s)))
}

func ClearCart(c *gin.Context) {
	s := store.Use()
	s.ClearCart()
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(s)))
}

// ApplyPromo validates the promo code. A mismatch resets the active discount
// before reporting failure; codes do not stack.
func ApplyPromo(c *gin.Context) {
	var req models.ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "code", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	s := store.Use()
	rate, ok := pricing.MatchPromo(req.Code)
	s.SetDiscount(rate)
	if !ok {
		s.ShowToast("Invalid promo code")
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid promo code", []global.ValidationError{
			{Field: "code", Message: "Promo code not recognized", Code: "invalid_promo"},
		}))
		return
	}

	s.ShowToast("Promo code applied successfully!")
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"applied":  true,
		"discount": rate,
		"quote":    pricing.QuoteFor(s.CartTotal(), s.Discount()),
	}))
}

// ========================
// wishlist
// ========================

func GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(store.Use().Wishlist()))
}

func ToggleWishlist(c *gin.Context) {
	var req models.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "book_id", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	book, ok := catalog.ByID(req.BookID)
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Book not found", []global.ValidationError{
			{Field: "book_id", Message: "No book exists with this ID", Code: "not_found"},
		}))
		return
	}

	s := store.Use()
	s.AddToWishlist(book)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"wishlisted": s.IsInWishlist(book.ID),
		"wishlist":   s.Wishlist(),
	}))
}

// ========================
// theme + toast
// ========================

func GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"dark_mode": store.Use().DarkMode(),
	}))
}

func ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"dark_mode": store.Use().ToggleTheme(),
	}))
}

func GetToast(c *gin.Context) {
	msg, ok := store.Use().Toast()
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": msg,
		"visible": ok,
	}))
}

// ========================
// checkout
// ========================

func GetProvinces(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(checkout.Provinces))
}

func GetCheckoutState(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"state": checkoutFlow.State(),
	}))
}

func SubmitShipping(c *gin.Context) {
	var details models.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if err := checkoutFlow.SubmitShipping(details); err != nil {
		var fieldErrs checkout.FieldErrors
		if errors.As(err, &fieldErrs) {
			verrs := make([]global.ValidationError, len(fieldErrs))
			for i, fe := range fieldErrs {
				verrs[i] = global.ValidationError{Field: fe.Field, Message: fe.Message, Code: fe.Code}
			}
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid shipping details", verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to submit shipping details", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"state":    checkoutFlow.State(),
		"shipping": checkoutFlow.Shipping(),
	}))
}

// ConfirmPayment completes the cash-on-delivery order and hands the
// confirmation payload to the client.
func ConfirmPayment(c *gin.Context) {
	order, err := checkoutFlow.ConfirmPayment(c.Request.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrWrongState) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Shipping details must be submitted first", []global.ValidationError{
				{Field: "state", Message: "Checkout is not at the payment step", Code: "wrong_state"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to complete order", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(order))
}
