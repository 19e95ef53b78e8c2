package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookera/storefront-api/pkg/global"
	"github.com/bookera/storefront-api/pkg/store"
)

// CheckoutGuard blocks the checkout flow when the cart is empty; the client
// is redirected back to the cart view.
func CheckoutGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Use().CartSize() == 0 {
			c.Header("Location", "/cart")
			c.JSON(http.StatusConflict, global.ErrorResponse("Cart is empty", []global.ValidationError{
				{Field: "cart", Message: "Add at least one book before checking out", Code: "empty_cart"},
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}
