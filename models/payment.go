package models

// PaymentConfirmation is the outcome of the processor's confirmation call.
// When the processor wants the shopper somewhere else (3DS, success page)
// RedirectURL carries the target.
type PaymentConfirmation struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
	RedirectURL     string `json:"redirectUrl,omitempty"`
}
