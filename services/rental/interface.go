package rental

import (
	"context"
	"time"

	"boulderhub/models"
	"boulderhub/services/notification"
)

// AvailabilityFetcher reads available crashpads for a date range.
// *AvailabilityClient is the production implementation.
type AvailabilityFetcher interface {
	Fetch(ctx context.Context, dr models.DateRange) ([]models.Crashpad, error)
}

// CartSubmitter posts a rental cart request to the store.
type CartSubmitter interface {
	Add(ctx context.Context, req models.CartRequest, csrfToken string) (*models.CartResponse, error)
}

// BookingFlowService drives one visitor's rental booking session: date
// range confirmation, availability rendering, selection, pricing summary
// and cart submission.
type BookingFlowService interface {
	StartSession() *models.BookingSession
	ApplyDateRange(ctx context.Context, sess *models.BookingSession, checkIn, checkOut string) error
	CancelDateRange(sess *models.BookingSession)
	ToggleSelection(sess *models.BookingSession, crashpadID int64, source ClickSource) (bool, error)
	ToggleDescription(sess *models.BookingSession, crashpadID int64) error
	Summary(sess *models.BookingSession) models.Summary
	OpenGallery(sess *models.BookingSession, crashpadID int64) (*Gallery, error)
	AddToCart(ctx context.Context, sess *models.BookingSession, csrfToken string) (*models.CartResponse, error)
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Availability AvailabilityFetcher
	Cart         CartSubmitter
	Presenter    notification.Presenter

	// Earliest-bookable-date policy.
	Zone       *time.Location
	CutoffHour int

	// Now is the clock source; tests override it. Nil means time.Now.
	Now func() time.Time
}

// WithPresenter returns a shallow copy bound to a different presenter, so
// a handler can collect toasts per request without rebuilding the service.
func (s *DefaultBookingFlowService) WithPresenter(p notification.Presenter) *DefaultBookingFlowService {
	copied := *s
	copied.Presenter = p
	return &copied
}
