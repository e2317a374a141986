package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

const (
	keyUserLocation         = "userLocation"
	keyHasRequestedLocation = "hasRequestedLocation"
	keyAPIKeys              = "apiKeys"
)

// getJSON decodes the value stored under key into dst. A missing key and an
// unparseable value both report found=false; the latter is only logged.
func (s *SQLiteDB) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading setting %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("ignoring malformed setting", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteDB) putJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding setting %s: %w", key, err)
	}
	return s.putRaw(ctx, key, string(b))
}

func (s *SQLiteDB) putRaw(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("error writing setting %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteDB) LoadLocation(ctx context.Context) (*models.Location, error) {
	var loc models.Location
	found, err := s.getJSON(ctx, keyUserLocation, &loc)
	if err != nil || !found {
		return nil, err
	}
	if loc.State == "" {
		return nil, nil
	}
	return &loc, nil
}

// SaveLocation overwrites the stored location. A nil location is not written,
// so a previous selection survives.
func (s *SQLiteDB) SaveLocation(ctx context.Context, loc *models.Location) error {
	if loc == nil {
		return nil
	}
	return s.putJSON(ctx, keyUserLocation, loc)
}

func (s *SQLiteDB) LoadHasRequestedLocation(ctx context.Context) (bool, error) {
	var requested bool
	found, err := s.getJSON(ctx, keyHasRequestedLocation, &requested)
	if err != nil || !found {
		return false, err
	}
	return requested, nil
}

func (s *SQLiteDB) SaveHasRequestedLocation(ctx context.Context, requested bool) error {
	return s.putJSON(ctx, keyHasRequestedLocation, requested)
}

func (s *SQLiteDB) LoadAPIKeys(ctx context.Context) (models.APIKeys, error) {
	var keys models.APIKeys
	found, err := s.getJSON(ctx, keyAPIKeys, &keys)
	if err != nil || !found {
		return models.APIKeys{}, err
	}
	return keys, nil
}

func (s *SQLiteDB) SaveAPIKeys(ctx context.Context, keys models.APIKeys) error {
	return s.putJSON(ctx, keyAPIKeys, keys)
}
