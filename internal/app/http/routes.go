package routes

import (
	"checkout-app/config"
	adminapi "checkout-app/internal/api/admin"
	authapi "checkout-app/internal/api/auth"
	checkoutapi "checkout-app/internal/api/checkout"
	paymentapi "checkout-app/internal/api/payment"
	"checkout-app/internal/app/http/middleware"
	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store checkout.Store, gateway payment.Gateway) {
	checkoutHandler := checkoutapi.NewHandler(store, gateway, config.APP_URL, config.API_URL, config.UPLOAD_DIR)
	callbackHandler := paymentapi.NewHandler(store, gateway, config.APP_URL)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// The gateway redirects the customer's browser here after payment.
	r.GET("/payment/callback", callbackHandler.Callback)

	r.GET("/checkout/success/:id", checkoutHandler.GetSuccess)

	// ✅ Apply input sanitization to public form routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeFormMiddleware())
	public.POST("/checkout", checkoutHandler.Submit)

	r.POST("/admin/login", authapi.AdminLogin)

	// Admin back office
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/submissions", adminapi.ListSubmissions)
	admin.GET("/submissions/:id", adminapi.GetSubmissionDetails)
}
