package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

func (s *SQLiteDB) Add(ctx context.Context, a *models.Alert) error {
	var lat, lon sql.NullFloat64
	if a.Coordinates != nil {
		lat = sql.NullFloat64{Float64: a.Coordinates.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: a.Coordinates.Longitude, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alerts (id, title, description, location, level, timestamp, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Description, a.Location, a.Level.String(), a.Timestamp, lat, lon, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("error inserting alert %s: %w", a.ID, err)
	}
	return nil
}

func (s *SQLiteDB) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM alerts WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("error checking alert %s: %w", id, err)
	}
	return n > 0, nil
}

// ListAlerts returns alerts in insertion order. A limit keeps the newest rows.
func (s *SQLiteDB) ListAlerts(ctx context.Context, opts Filter) ([]models.Alert, error) {
	var (
		where []string
		args  []any
	)
	if opts.Level != nil {
		where = append(where, "level = ?")
		args = append(args, opts.Level.String())
	}

	query := `SELECT seq, id, title, description, location, level, timestamp, latitude, longitude FROM alerts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if opts.Limit > 0 {
		query = "SELECT * FROM (" + query + " ORDER BY seq DESC LIMIT ?)"
		args = append(args, opts.Limit)
	}
	query += " ORDER BY seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var (
			a        models.Alert
			seq      int64
			level    string
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(&seq, &a.ID, &a.Title, &a.Description, &a.Location, &level, &a.Timestamp, &lat, &lon); err != nil {
			return nil, fmt.Errorf("error scanning alert: %w", err)
		}
		a.Level = models.ParseAlertLevel(level)
		if lat.Valid && lon.Valid {
			a.Coordinates = &models.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
