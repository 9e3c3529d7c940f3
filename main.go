package main

import (
	"time"

	"checkout-app/config"
	"checkout-app/database"
	routes "checkout-app/internal/app/http"
	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/infra/chapa"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store := checkout.NewStore(database.DB)
	gateway := chapa.NewClient(config.CHAPA_SECRET_KEY)

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(corsConfig()))

	routes.RegisterRoutes(r, store, gateway)

	r.Run(":" + config.PORT)
}

func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
