package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-disaster-dashboard/internal/assistant"
	"github.com/mr1hm/go-disaster-dashboard/internal/catalog"
	"github.com/mr1hm/go-disaster-dashboard/internal/location"
	"github.com/mr1hm/go-disaster-dashboard/internal/models"
	"github.com/mr1hm/go-disaster-dashboard/internal/observability"
	"github.com/mr1hm/go-disaster-dashboard/internal/repository"
	"github.com/mr1hm/go-disaster-dashboard/internal/stream"
)

const (
	mapsScriptURL   = "https://maps.googleapis.com/maps/api/js"
	mapsCallback    = "initMap"
	promptDelayMS   = 2000
	maxAlertsServed = 500
)

// KeyStore holds the credentials entered by the user.
type KeyStore interface {
	LoadAPIKeys(ctx context.Context) (models.APIKeys, error)
	SaveAPIKeys(ctx context.Context, keys models.APIKeys) error
}

// Deps are the collaborators behind the HTTP API. Broadcaster and Metrics may be nil.
type Deps struct {
	Alerts       repository.AlertRepository
	Keys         KeyStore
	Locations    *location.Controller
	Conversation *assistant.Conversation
	Broadcaster  *stream.Broadcaster
	Metrics      *observability.Metrics
	// MapsAPIKey is used when no key has been stored.
	MapsAPIKey string
}

type Handler struct {
	Deps
}

func NewHandler(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	api := r.Group("/api")
	api.GET("/states", h.getStates)
	api.GET("/states/:state/districts", h.getDistricts)

	api.GET("/location", h.getLocation)
	api.PUT("/location", h.putLocation)
	api.POST("/location/coordinates", h.postCoordinates)
	api.POST("/location/error", h.postLocationError)
	api.GET("/location/prompt", h.getPrompt)

	api.GET("/alerts", h.getAlerts)
	api.GET("/alerts/stream", h.streamAlerts)

	api.GET("/safety-tips", h.getSafetyTips)
	api.GET("/contacts", h.getContacts)

	api.GET("/chat", h.getChat)
	api.POST("/chat", h.postChat)
	api.GET("/assistant/faq", h.getFAQ)

	api.GET("/keys", h.getKeys)
	api.PUT("/keys", h.putKeys)
	api.GET("/map/config", h.getMapConfig)
	api.GET("/map/features", h.getMapFeatures)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":               location.IndianStates,
		"disaster_prone_areas": location.DisasterProneAreas,
	})
}

func (h *Handler) getDistricts(c *gin.Context) {
	state := c.Param("state")
	if !location.IsKnownState(state) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown state"})
		return
	}

	districts := location.Districts(state)
	if districts == nil {
		districts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "districts": districts})
}

func locationBody(loc *models.Location) gin.H {
	return gin.H{
		"location":  loc,
		"formatted": loc.Format(),
		"known":     loc.Known(),
	}
}

func (h *Handler) getLocation(c *gin.Context) {
	body := locationBody(h.Locations.Current())
	body["has_requested_location"] = h.Locations.HasRequestedLocation()
	c.JSON(http.StatusOK, body)
}

type selectLocationRequest struct {
	State    string `json:"state" binding:"required"`
	District string `json:"district"`
}

func (h *Handler) putLocation(c *gin.Context) {
	var req selectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state is required"})
		return
	}

	loc, err := h.Locations.Select(c.Request.Context(), req.State, req.District)
	if errors.Is(err, location.ErrUnknownState) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state"})
		return
	}
	if err != nil {
		slog.Error("failed to save location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}

	c.JSON(http.StatusOK, locationBody(loc))
}

type coordinatesRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (h *Handler) postCoordinates(c *gin.Context) {
	var req coordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	loc, err := h.Locations.CaptureCoordinates(c.Request.Context(), *req.Latitude, *req.Longitude)
	if errors.Is(err, location.ErrInvalidCoordinates) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}
	if err != nil {
		slog.Error("failed to save coordinates", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}

	c.JSON(http.StatusOK, locationBody(loc))
}

type locationErrorRequest struct {
	Code int `json:"code"`
}

// postLocationError turns a client geolocation failure into the message to
// show. The location is left untouched.
func (h *Handler) postLocationError(c *gin.Context) {
	var req locationErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	kind := location.ParseGeoErrorKind(req.Code)
	slog.Warn("client geolocation failed", "kind", kind.String(), "code", req.Code)
	c.JSON(http.StatusOK, gin.H{
		"kind":    kind.String(),
		"message": kind.Message(),
	})
}

func (h *Handler) getPrompt(c *gin.Context) {
	prompt, err := h.Locations.ShouldPrompt(c.Request.Context())
	if err != nil {
		slog.Error("failed to record location prompt", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record prompt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"prompt":   prompt,
		"delay_ms": promptDelayMS,
	})
}

// requestLocation prefers explicit query parameters over the stored location.
func (h *Handler) requestLocation(c *gin.Context) *models.Location {
	if state := c.Query("state"); state != "" {
		return &models.Location{State: state, District: c.Query("district")}
	}
	return h.Locations.Current()
}

// visibleAlerts filters every stored alert by loc and keeps the newest
// maxAlertsServed matches in insertion order.
func (h *Handler) visibleAlerts(ctx context.Context, filter repository.Filter, loc *models.Location) ([]models.Alert, error) {
	alerts, err := h.Alerts.ListAlerts(ctx, filter)
	if err != nil {
		return nil, err
	}

	visible := location.FilterAlertsByLocation(alerts, loc)
	if len(visible) > maxAlertsServed {
		visible = visible[len(visible)-maxAlertsServed:]
	}
	return visible, nil
}

func (h *Handler) getAlerts(c *gin.Context) {
	var filter repository.Filter
	if l := c.Query("level"); l != "" {
		level := models.ParseAlertLevel(l)
		filter.Level = &level
	}

	loc := h.requestLocation(c)
	visible, err := h.visibleAlerts(c.Request.Context(), filter, loc)
	if err != nil {
		slog.Error("failed to fetch alerts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}

	high, other := location.GroupByLevel(visible)
	if h.Metrics != nil {
		h.Metrics.AlertsServed.Add(float64(len(visible)))
	}

	c.JSON(http.StatusOK, gin.H{
		"location":      loc.Format(),
		"count":         len(visible),
		"high_priority": high,
		"other":         other,
	})
}

// streamAlerts pushes newly ingested alerts that match the location as
// server-sent events until the client goes away.
func (h *Handler) streamAlerts(c *gin.Context) {
	if h.Broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert stream unavailable"})
		return
	}

	id, ch := h.Broadcaster.Subscribe()
	defer h.Broadcaster.Unsubscribe(id)
	if h.Metrics != nil {
		h.Metrics.StreamSubscribers.Inc()
		defer h.Metrics.StreamSubscribers.Dec()
	}

	ctx := c.Request.Context()
	fixed := c.Query("state") != ""
	loc := h.requestLocation(c)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("ready", gin.H{"location": loc.Format()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case alert, ok := <-ch:
			if !ok {
				return false
			}
			if !fixed {
				loc = h.Locations.Current()
			}
			if len(location.FilterAlertsByLocation([]models.Alert{alert}, loc)) == 0 {
				return true
			}
			c.SSEvent("alert", alert)
			return true
		}
	})
}

// getMapFeatures serves the location-filtered alerts and the user position as GeoJSON.
func (h *Handler) getMapFeatures(c *gin.Context) {
	loc := h.requestLocation(c)
	visible, err := h.visibleAlerts(c.Request.Context(), repository.Filter{}, loc)
	if err != nil {
		slog.Error("failed to fetch alerts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}

	fc := toGeoJSON(visible, loc)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getSafetyTips(c *gin.Context) {
	category := c.Query("category")
	tips := catalog.SafetyTips(category)
	if category != "" && len(tips) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tip category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "tips": tips})
}

func (h *Handler) getContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contacts": catalog.SortContacts(catalog.EmergencyContacts()),
	})
}

func (h *Handler) getChat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.Conversation.Messages(),
		"pending":  h.Conversation.Pending(),
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) postChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, _, err := h.Conversation.Submit(c.Request.Context(), req.Message, h.Locations.Current())
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	case errors.Is(err, assistant.ErrRequestPending):
		c.JSON(http.StatusConflict, gin.H{"error": "a response is still pending"})
		return
	case err != nil:
		slog.Error("failed to submit chat message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}

func (h *Handler) getFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"faq":                 catalog.FAQ(),
		"suggested_questions": catalog.SuggestedQuestions,
	})
}

func keyPresence(keys models.APIKeys) gin.H {
	return gin.H{
		"openai":     keys.OpenAI != "",
		"googlemaps": keys.GoogleMaps != "",
	}
}

func (h *Handler) getKeys(c *gin.Context) {
	keys, err := h.Keys.LoadAPIKeys(c.Request.Context())
	if err != nil {
		slog.Error("failed to load api keys", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load keys"})
		return
	}
	c.JSON(http.StatusOK, keyPresence(keys))
}

func (h *Handler) putKeys(c *gin.Context) {
	var keys models.APIKeys
	if err := c.ShouldBindJSON(&keys); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Keys.SaveAPIKeys(c.Request.Context(), keys); err != nil {
		slog.Error("failed to save api keys", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save keys"})
		return
	}
	slog.Info("api keys updated", "openai", keys.OpenAI != "", "googlemaps", keys.GoogleMaps != "")
	c.JSON(http.StatusOK, keyPresence(keys))
}

func (h *Handler) getMapConfig(c *gin.Context) {
	keys, err := h.Keys.LoadAPIKeys(c.Request.Context())
	if err != nil {
		slog.Error("failed to load api keys", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load keys"})
		return
	}

	key := keys.GoogleMaps
	if key == "" {
		key = h.MapsAPIKey
	}
	if key == "" {
		c.JSON(http.StatusOK, gin.H{"configured": false, "callback": mapsCallback})
		return
	}

	query := url.Values{}
	query.Set("key", key)
	query.Set("callback", mapsCallback)
	c.JSON(http.StatusOK, gin.H{
		"configured": true,
		"script_url": mapsScriptURL + "?" + query.Encode(),
		"callback":   mapsCallback,
	})
}
