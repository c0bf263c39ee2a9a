package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Booking flow endpoints.
	StartSession      gin.HandlerFunc
	ApplyDates        gin.HandlerFunc
	CancelDates       gin.HandlerFunc
	ToggleSelection   gin.HandlerFunc
	ToggleDescription gin.HandlerFunc
	Summary           gin.HandlerFunc
	Gallery           gin.HandlerFunc
	AddToCart         gin.HandlerFunc

	// Checkout endpoints.
	ConfirmCheckout gin.HandlerFunc

	// Newsletter endpoints.
	NewsletterSignup gin.HandlerFunc
}
