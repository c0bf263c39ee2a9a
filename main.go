package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boulderhub/config"
	"boulderhub/handlers"
	"boulderhub/middleware"
	"boulderhub/routes"
	"boulderhub/services/cart"
	"boulderhub/services/checkout"
	"boulderhub/services/newsletter"
	"boulderhub/services/notification"
	"boulderhub/services/rental"
	"boulderhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	storeURL := config.AppConfig.StoreURL

	// Upstream store clients.
	availabilityClient := rental.NewAvailabilityClient(storeURL, rental.WithLogger(logger))
	cartClient := cart.NewClient(storeURL, cart.WithLogger(logger))
	metadataClient := checkout.NewOrderMetadataClient(storeURL, logger)
	newsletterClient := newsletter.NewClient(resolveAgainstStore(config.AppConfig.NewsletterAction), logger)

	presenter := notification.NewLogPresenter(logger)

	// Services.
	bookingFlow := &rental.DefaultBookingFlowService{
		Availability: availabilityClient,
		Cart:         cartClient,
		Presenter:    presenter,
		Zone:         rental.BookingZone(config.AppConfig.BookingTimezone),
		CutoffHour:   config.AppConfig.BookingCutoffHour,
	}
	checkoutFlow := &checkout.Flow{
		Metadata:  metadataClient,
		Confirmer: checkout.NewStripeConfirmer(logger),
		Presenter: presenter,
		ReturnURL: resolveAgainstStore(config.AppConfig.CheckoutReturnPath),
	}

	bookingHandler := handlers.NewBookingHandler(bookingFlow, utils.GetSessionCacheClient(), logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutFlow)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StartSession:      bookingHandler.StartSession,
		ApplyDates:        bookingHandler.ApplyDates,
		CancelDates:       bookingHandler.CancelDates,
		ToggleSelection:   bookingHandler.ToggleSelection,
		ToggleDescription: bookingHandler.ToggleDescription,
		Summary:           bookingHandler.Summary,
		Gallery:           bookingHandler.Gallery,
		AddToCart:         bookingHandler.AddToCart,

		ConfirmCheckout: checkoutHandler.Confirm,

		NewsletterSignup: newsletterHandler.Signup,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting gateway on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gateway...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}

// resolveAgainstStore turns a relative path into an absolute URL on the
// store; absolute URLs pass through untouched.
func resolveAgainstStore(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return config.AppConfig.StoreURL + path
}
