package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

var (
	ErrUnknownState       = errors.New("unknown state")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

// Store persists the location selection between runs.
type Store interface {
	LoadLocation(ctx context.Context) (*models.Location, error)
	SaveLocation(ctx context.Context, loc *models.Location) error
	LoadHasRequestedLocation(ctx context.Context) (bool, error)
	SaveHasRequestedLocation(ctx context.Context, requested bool) error
}

// Controller owns the user's location. Readers get copies; writers replace the
// whole value.
type Controller struct {
	store        Store
	mu           sync.RWMutex
	current      *models.Location
	hasRequested bool
}

// NewController reads the persisted state once. Load failures leave the
// defaults in place.
func NewController(ctx context.Context, store Store) *Controller {
	c := &Controller{store: store}

	loc, err := store.LoadLocation(ctx)
	if err != nil {
		slog.Warn("failed to load saved location", "error", err)
	}
	c.current = loc

	requested, err := store.LoadHasRequestedLocation(ctx)
	if err != nil {
		slog.Warn("failed to load location prompt flag", "error", err)
	}
	c.hasRequested = requested

	return c
}

// Current returns a snapshot of the selected location, or nil.
func (c *Controller) Current() *models.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Clone()
}

func (c *Controller) HasRequestedLocation() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hasRequested
}

// Select stores a manually chosen state and optional district.
func (c *Controller) Select(ctx context.Context, state, district string) (*models.Location, error) {
	state = strings.TrimSpace(state)
	district = strings.TrimSpace(district)
	if !IsKnownState(state) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	loc := &models.Location{State: state, District: district}
	if err := c.replace(ctx, loc); err != nil {
		return nil, err
	}
	slog.Info("location selected", "state", state, "district", district)
	return loc.Clone(), nil
}

// CaptureCoordinates stores a position reported by the client. No reverse
// geocoding is done, so the state is the UnknownState sentinel.
func (c *Controller) CaptureCoordinates(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: %f,%f", ErrInvalidCoordinates, lat, lon)
	}

	loc := &models.Location{
		State:       models.UnknownState,
		Coordinates: &models.Coordinates{Latitude: lat, Longitude: lon},
	}
	if err := c.replace(ctx, loc); err != nil {
		return nil, err
	}
	slog.Info("location captured from coordinates")
	return loc.Clone(), nil
}

// ShouldPrompt reports whether the client should ask for a location. It is
// true once, on the first visit, and the answer is persisted.
func (c *Controller) ShouldPrompt(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasRequested {
		return false, nil
	}
	if err := c.store.SaveHasRequestedLocation(ctx, true); err != nil {
		return false, fmt.Errorf("error saving prompt flag: %w", err)
	}
	c.hasRequested = true
	return true, nil
}

func (c *Controller) replace(ctx context.Context, loc *models.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveLocation(ctx, loc); err != nil {
		return fmt.Errorf("error saving location: %w", err)
	}
	c.current = loc.Clone()
	return nil
}
