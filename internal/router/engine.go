package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookera/storefront-api/pkg/checkout"
	"github.com/bookera/storefront-api/pkg/store"
)

var Router *gin.Engine

// checkoutFlow is the single checkout state machine for this process
// instance, created alongside the route table.
var checkoutFlow *checkout.Flow

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://bookera.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	checkoutFlow = checkout.NewFlow(store.Use())

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		books := api.Group("/books")
		{
			books.GET("/", GetAllBooks)
			books.GET("/bestsellers", GetBestsellers)
			books.GET("/categories", GetCategories)
			books.GET("/:id", GetBookByID)
			books.GET("/:id/reviews", GetBookReviews)
			books.POST("/:id/insights", GenerateBookInsights)
		}

		concierge := api.Group("/concierge")
		{
			concierge.POST("/chat", ConciergeChat)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/", GetCart)
			cart.POST("/items", AddToCart)
			cart.PUT("/items/:id", UpdateCartItem)
			cart.DELETE("/items/:id", RemoveFromCart)
			cart.DELETE("/", ClearCart)
			cart.POST("/promo", ApplyPromo)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("/", GetWishlist)
			wishlist.POST("/toggle", ToggleWishlist)
		}

		theme := api.Group("/theme")
		{
			theme.GET("/", GetTheme)
			theme.POST("/toggle", ToggleTheme)
		}

		api.GET("/toast", GetToast)

		co := api.Group("/checkout")
		{
			co.GET("/provinces", GetProvinces)
			co.GET("/state", GetCheckoutState)

			guarded := co.Group("")
			guarded.Use(CheckoutGuard())
			{
				guarded.POST("/shipping", SubmitShipping)
				guarded.POST("/confirm", ConfirmPayment)
			}
		}
	}
}
