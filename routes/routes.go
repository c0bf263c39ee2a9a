package routes

import (
	"net/http"
	"time"

	"boulderhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the rental booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.PUT("/session/:sessionID/dates", hb.ApplyDates)
		bookingGroup.DELETE("/session/:sessionID/dates", hb.CancelDates)
		bookingGroup.POST("/session/:sessionID/toggle", hb.ToggleSelection)
		bookingGroup.POST("/session/:sessionID/description", hb.ToggleDescription)
		bookingGroup.GET("/session/:sessionID/summary", hb.Summary)
		bookingGroup.GET("/session/:sessionID/gallery/:crashpadID", hb.Gallery)
		bookingGroup.POST("/session/:sessionID/cart", hb.AddToCart)
	}
}

// RegisterCheckoutRoutes sets up the payment confirmation endpoint.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.POST("/confirm", hb.ConfirmCheckout)
	}
}

// RegisterNewsletterRoutes sets up the newsletter signup endpoint.
func RegisterNewsletterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/newsletter/signup", hb.NewsletterSignup)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the boulderhub gateway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The gateway is called from the browser; cookies must survive CORS.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-CSRFToken", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterNewsletterRoutes(r, hb)
	RegisterHealthRoute(r)
}
