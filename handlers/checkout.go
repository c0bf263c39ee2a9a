package handlers

import (
	"net/http"

	"boulderhub/config"
	"boulderhub/services/checkout"
	"boulderhub/services/notification"
	"boulderhub/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler runs the checkout flow: order metadata first, payment
// confirmation second.
type CheckoutHandler struct {
	Flow *checkout.Flow
}

func NewCheckoutHandler(flow *checkout.Flow) *CheckoutHandler {
	return &CheckoutHandler{Flow: flow}
}

// Confirm accepts the checkout form as multipart data, exactly as the
// payment page posts it. The payment_intent_id field names the pending
// payment; everything else is order metadata.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form", "details": err.Error()})
		return
	}

	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}
	paymentIntentID := fields["payment_intent_id"]
	delete(fields, "payment_intent_id")

	csrfToken := utils.CSRFToken(c.Request.Cookies(), config.AppConfig.CSRFCookieName)
	collector := &notification.Collector{}
	confirmation, err := h.Flow.WithPresenter(collector).Confirm(c.Request.Context(), paymentIntentID, fields, csrfToken)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "toasts": collector.Toasts})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       confirmation.Status,
		"redirect_url": confirmation.RedirectURL,
		"toasts":       collector.Toasts,
	})
}
