package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/bookera/storefront-api/internal/router"
	"github.com/bookera/storefront-api/pkg/ai"
	"github.com/bookera/storefront-api/pkg/global"
	"github.com/bookera/storefront-api/pkg/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	s := store.Init()
	s.Subscribe(func(ev store.Event) {
		// Mirrors the theme into the process log, the document-level
		// presentation hook of the original client.
		if ev.Kind == store.ThemeChanged {
			log.Printf("Theme switched to %s mode", ev.Detail)
		}
	})

	ai.InitService()
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Bookera storefront API is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
