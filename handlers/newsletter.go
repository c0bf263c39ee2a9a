package handlers

import (
	"net/http"

	"boulderhub/services/newsletter"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler proxies footer signups to the store's newsletter form.
type NewsletterHandler struct {
	Client *newsletter.Client
}

func NewNewsletterHandler(client *newsletter.Client) *NewsletterHandler {
	return &NewsletterHandler{Client: client}
}

// Signup subscribes an email address. Field-level rejections come back as
// one joined message; the success flag tells the caller which it was.
func (h *NewsletterHandler) Signup(c *gin.Context) {
	email := c.PostForm("email")

	resp, err := h.Client.Signup(c.Request.Context(), email)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "An error occurred. Please try again."})
		return
	}

	if !resp.Success {
		message := resp.Message
		if len(resp.Errors) > 0 {
			message = newsletter.FieldErrorText(resp.Errors)
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": resp.Message})
}
