package rental

import (
	"context"
	"errors"
	"time"

	"boulderhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const missingInputMessage = "Please select dates and at least one crashpad"

// StartSession opens a fresh booking session with the earliest bookable
// date already computed for the picker.
func (s *DefaultBookingFlowService) StartSession() *models.BookingSession {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if s.Zone != nil {
		now = now.In(s.Zone)
	}
	return &models.BookingSession{
		SessionID: uuid.New().String(),
		MinDate:   EarliestBookableDate(now, s.CutoffHour).Format(models.DateLayout),
	}
}

// ApplyDateRange confirms a picker selection: it replaces the active range,
// clears the selection and fetches availability for the new dates. The
// loading indicator is shown and the results area hidden while the fetch is
// in flight; both are restored unconditionally when the call settles,
// whatever path it took.
//
// Each search carries a token. If a newer search was issued while this one
// was in flight, the stale completion is dropped instead of rendered.
func (s *DefaultBookingFlowService) ApplyDateRange(ctx context.Context, sess *models.BookingSession, checkIn, checkOut string) error {
	dr, err := models.NewDateRange(checkIn, checkOut)
	if err != nil {
		vErr := &models.ValidationError{Message: err.Error()}
		s.Presenter.Error("Error", vErr.Message)
		return vErr
	}

	sess.DateRange = &dr
	sess.Selected = nil
	sess.FetchToken++
	token := sess.FetchToken

	sess.View.Loading = true
	sess.View.ResultsVisible = false
	stale := false
	defer func() {
		if stale {
			return
		}
		sess.View.Loading = false
		sess.View.ResultsVisible = true
	}()

	pads, err := s.Availability.Fetch(ctx, dr)
	if token != sess.FetchToken {
		// A newer search superseded this one while it was in flight.
		stale = true
		zap.L().Debug("dropping stale availability response",
			zap.Uint64("token", token),
			zap.Uint64("latest", sess.FetchToken))
		return nil
	}
	if err != nil {
		sess.Crashpads = nil
		sess.Cards = nil
		sess.View.NoAvailability = false
		s.Presenter.Error("Error", userMessage(err))
		return err
	}

	sess.Crashpads = pads
	if len(pads) == 0 {
		// Zero availability is a real outcome, rendered explicitly.
		sess.Cards = nil
		sess.View.NoAvailability = true
		return nil
	}
	sess.View.NoAvailability = false
	sess.Cards = BuildCards(pads, nil)
	return nil
}

// CancelDateRange clears the picker: range, selection and results all go.
func (s *DefaultBookingFlowService) CancelDateRange(sess *models.BookingSession) {
	sess.DateRange = nil
	sess.Selected = nil
	sess.Crashpads = nil
	sess.Cards = nil
	sess.View = models.ViewState{}
}

// ToggleSelection flips membership for a crashpad and reports the new
// state. Clicks originating from the expand or gallery controls are
// swallowed: membership stays as it was.
func (s *DefaultBookingFlowService) ToggleSelection(sess *models.BookingSession, crashpadID int64, source ClickSource) (bool, error) {
	card := findCard(sess, crashpadID)
	if card == nil {
		return false, &models.ValidationError{Message: "unknown crashpad"}
	}
	sel := SelectionFromIDs(sess.Selected)
	if source != ClickCard {
		return sel.Has(crashpadID), nil
	}
	member := sel.Toggle(crashpadID)
	sess.Selected = sel.IDs()
	card.Selected = member
	return member, nil
}

// ToggleDescription expands or collapses a card's description.
func (s *DefaultBookingFlowService) ToggleDescription(sess *models.BookingSession, crashpadID int64) error {
	card := findCard(sess, crashpadID)
	if card == nil {
		return &models.ValidationError{Message: "unknown crashpad"}
	}
	toggleDescription(card)
	return nil
}

// Summary derives the running count/days/total from the current selection
// and range. With nothing selected or no active range the summary is
// suppressed, regardless of the other side.
func (s *DefaultBookingFlowService) Summary(sess *models.BookingSession) models.Summary {
	if len(sess.Selected) == 0 || sess.DateRange == nil {
		return models.Summary{Suppressed: true}
	}
	days := sess.DateRange.StayLengthDays()
	quote := Quote(sess.Crashpads, SelectionFromIDs(sess.Selected), days)
	return models.Summary{
		Count: len(sess.Selected),
		Days:  days,
		Total: quote.Total,
	}
}

// OpenGallery builds the carousel for one crashpad in the result set.
func (s *DefaultBookingFlowService) OpenGallery(sess *models.BookingSession, crashpadID int64) (*Gallery, error) {
	for _, pad := range sess.Crashpads {
		if pad.ID == crashpadID {
			return NewGallery(pad), nil
		}
	}
	return nil, &models.ValidationError{Message: "unknown crashpad"}
}

// AddToCart submits the selection and date range to the store's cart.
// Validation happens before any network call; every failure settles as one
// presenter notification.
func (s *DefaultBookingFlowService) AddToCart(ctx context.Context, sess *models.BookingSession, csrfToken string) (*models.CartResponse, error) {
	if sess.DateRange == nil || len(sess.Selected) == 0 {
		vErr := &models.ValidationError{Message: missingInputMessage}
		s.Presenter.Error("Error", vErr.Message)
		return nil, vErr
	}

	req := models.CartRequest{
		CrashpadIDs: sess.Selected,
		CheckIn:     sess.DateRange.CheckInString(),
		CheckOut:    sess.DateRange.CheckOutString(),
		Quantity:    1,
	}
	resp, err := s.Cart.Add(ctx, req, csrfToken)
	if err != nil {
		s.Presenter.Error("Error", userMessage(err))
		return nil, err
	}

	s.Presenter.Success("Success", "Items added to cart")
	return resp, nil
}

func findCard(sess *models.BookingSession, crashpadID int64) *models.Card {
	for i := range sess.Cards {
		if sess.Cards[i].CrashpadID == crashpadID {
			return &sess.Cards[i]
		}
	}
	return nil
}

// userMessage maps an error to the single notification the visitor sees.
// Structured server messages pass through verbatim; transport failures get
// a generic line with no diagnostic detail.
func userMessage(err error) string {
	var srvErr *models.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Message
	}
	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	var netErr *models.NetworkError
	if errors.As(err, &netErr) {
		return genericLoadFailure
	}
	return err.Error()
}
