package checkout

import (
	"context"
	"errors"

	"boulderhub/models"
	"boulderhub/services/notification"
)

const genericCheckoutFailure = "An error occurred. Please try again."

// Flow runs the two-step checkout: store the order form, then confirm the
// payment. The steps are strictly ordered; a metadata failure never reaches
// the processor.
type Flow struct {
	Metadata  MetadataStore
	Confirmer PaymentConfirmer
	Presenter notification.Presenter

	// ReturnURL is where the processor sends the shopper after payment.
	ReturnURL string
}

// WithPresenter returns a shallow copy bound to a different presenter.
func (f *Flow) WithPresenter(p notification.Presenter) *Flow {
	copied := *f
	copied.Presenter = p
	return &copied
}

// Confirm places the order. Both dates of failure surface as exactly one
// presenter notification: the processor's own message when it gave one, a
// generic line otherwise.
func (f *Flow) Confirm(ctx context.Context, paymentIntentID string, form map[string]string, csrfToken string) (*models.PaymentConfirmation, error) {
	if paymentIntentID == "" {
		vErr := &models.ValidationError{Message: "missing payment reference"}
		f.Presenter.Error("Error", vErr.Message)
		return nil, vErr
	}

	if err := f.Metadata.StoreOrderMetadata(ctx, form, csrfToken); err != nil {
		f.Presenter.Error("Error", checkoutMessage(err))
		return nil, err
	}

	confirmation, err := f.Confirmer.Confirm(ctx, paymentIntentID, f.ReturnURL)
	if err != nil {
		f.Presenter.Error("Error", checkoutMessage(err))
		return nil, err
	}
	return confirmation, nil
}

func checkoutMessage(err error) string {
	var srvErr *models.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Message
	}
	return genericCheckoutFailure
}
