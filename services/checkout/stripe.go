package checkout

import (
	"context"
	"errors"

	"boulderhub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeConfirmer confirms payment intents through Stripe, handing the
// processor the post-payment return URL. The global stripe key is set at
// startup.
type StripeConfirmer struct {
	logger *zap.Logger
}

func NewStripeConfirmer(logger *zap.Logger) *StripeConfirmer {
	return &StripeConfirmer{logger: logger}
}

// Confirm runs the processor's confirmation call. The processor owns the
// redirect from here on; we only report where it wants the shopper next.
func (s *StripeConfirmer) Confirm(ctx context.Context, paymentIntentID, returnURL string) (*models.PaymentConfirmation, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params:    stripe.Params{Context: ctx},
		ReturnURL: stripe.String(returnURL),
	}

	pi, err := paymentintent.Confirm(paymentIntentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			s.logger.Warn("payment confirmation rejected",
				zap.String("payment_intent", paymentIntentID),
				zap.String("code", string(stripeErr.Code)))
			return nil, &models.ServerError{Status: stripeErr.HTTPStatusCode, Message: stripeErr.Msg}
		}
		return nil, &models.NetworkError{Err: err}
	}

	confirmation := &models.PaymentConfirmation{
		PaymentIntentID: pi.ID,
		Status:          string(pi.Status),
	}
	if pi.NextAction != nil && pi.NextAction.RedirectToURL != nil {
		confirmation.RedirectURL = pi.NextAction.RedirectToURL.URL
	}

	s.logger.Info("payment confirmed",
		zap.String("payment_intent", pi.ID),
		zap.String("status", string(pi.Status)))
	return confirmation, nil
}
