package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"boulderhub/config"
	"boulderhub/models"
	"boulderhub/services/notification"
	"boulderhub/services/rental"
	"boulderhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "booking-session:"

// BookingHandler exposes one visitor's rental booking flow over HTTP.
// Sessions live in the cache between requests, the gateway's equivalent of
// one open page.
type BookingHandler struct {
	Flow       *rental.DefaultBookingFlowService
	Cache      *redis.Client
	SessionTTL time.Duration
	Logger     *zap.Logger
}

func NewBookingHandler(flow *rental.DefaultBookingFlowService, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Flow:       flow,
		Cache:      cache,
		SessionTTL: 30 * time.Minute,
		Logger:     logger,
	}
}

// StartSession opens a booking session and reports the earliest bookable
// date for the picker.
func (h *BookingHandler) StartSession(c *gin.Context) {
	sess := h.Flow.StartSession()
	if err := h.saveSession(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sess.SessionID,
		"minDate":   sess.MinDate,
	})
}

// ApplyDates confirms a date range and fetches availability for it.
func (h *BookingHandler) ApplyDates(c *gin.Context) {
	var input struct {
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, ok := h.loadSession(c)
	if !ok {
		return
	}

	collector := &notification.Collector{}
	err := h.Flow.WithPresenter(collector).ApplyDateRange(c.Request.Context(), sess, input.CheckIn, input.CheckOut)

	// The session reflects the settled view state either way; keep it.
	if saveErr := h.saveSession(c.Request.Context(), sess); saveErr != nil {
		h.Logger.Error("failed to persist booking session", zap.Error(saveErr))
	}

	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "toasts": collector.Toasts})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":   sess.View,
		"cards":  sess.Cards,
		"toasts": collector.Toasts,
	})
}

// CancelDates clears the picker: range, selection and results.
func (h *BookingHandler) CancelDates(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	h.Flow.CancelDateRange(sess)
	if err := h.saveSession(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": sess.View})
}

// ToggleSelection flips a crashpad in and out of the selection.
func (h *BookingHandler) ToggleSelection(c *gin.Context) {
	var input struct {
		CrashpadID int64  `json:"crashpad_id"`
		Source     string `json:"source"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	source := rental.ClickSource(input.Source)
	if source == "" {
		source = rental.ClickCard
	}

	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	selected, err := h.Flow.ToggleSelection(sess, input.CrashpadID, source)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.saveSession(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"selected": selected,
		"summary":  h.Flow.Summary(sess),
	})
}

// ToggleDescription expands or collapses a card's description.
func (h *BookingHandler) ToggleDescription(c *gin.Context) {
	var input struct {
		CrashpadID int64 `json:"crashpad_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := h.Flow.ToggleDescription(sess, input.CrashpadID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.saveSession(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": sess.Cards})
}

// Summary reports the running selection summary.
func (h *BookingHandler) Summary(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	summary := h.Flow.Summary(sess)
	resp := gin.H{"summary": summary}
	if !summary.Suppressed {
		resp["totalDisplay"] = utils.FormatEuro(summary.Total)
	}
	c.JSON(http.StatusOK, resp)
}

// Gallery builds the image carousel for one crashpad in the result set.
func (h *BookingHandler) Gallery(c *gin.Context) {
	crashpadID, err := strconv.ParseInt(c.Param("crashpadID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crashpad id"})
		return
	}
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	gallery, err := h.Flow.OpenGallery(sess, crashpadID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// AddToCart submits the selection and date range to the store's cart,
// forwarding the shopper's CSRF token.
func (h *BookingHandler) AddToCart(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}

	csrfToken := utils.CSRFToken(c.Request.Cookies(), config.AppConfig.CSRFCookieName)
	collector := &notification.Collector{}
	resp, err := h.Flow.WithPresenter(collector).AddToCart(c.Request.Context(), sess, csrfToken)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "toasts": collector.Toasts})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"redirect_url": resp.RedirectURL,
		"toasts":       collector.Toasts,
	})
}

func (h *BookingHandler) loadSession(c *gin.Context) (*models.BookingSession, bool) {
	sessionID := c.Param("sessionID")
	data, err := h.Cache.Get(c.Request.Context(), sessionKeyPrefix+sessionID).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return nil, false
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse booking session", "details": err.Error()})
		return nil, false
	}
	return &sess, true
}

func (h *BookingHandler) saveSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return h.Cache.Set(ctx, sessionKeyPrefix+sess.SessionID, data, h.SessionTTL).Err()
}

// statusForError maps the storefront error taxonomy onto response codes:
// client mistakes are 400s, upstream trouble is a 502.
func statusForError(err error) int {
	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}
	var srvErr *models.ServerError
	if errors.As(err, &srvErr) {
		return http.StatusBadGateway
	}
	var netErr *models.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
