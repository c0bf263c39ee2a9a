package checkout

import (
	"context"

	"boulderhub/models"
)

// PaymentConfirmer abstracts the processor's confirmation step so the
// checkout flow never touches a concrete SDK. StripeConfirmer is the
// production implementation.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, paymentIntentID, returnURL string) (*models.PaymentConfirmation, error)
}

// MetadataStore persists the order form against the pending payment.
// It must succeed before confirmation may proceed.
type MetadataStore interface {
	StoreOrderMetadata(ctx context.Context, fields map[string]string, csrfToken string) error
}
