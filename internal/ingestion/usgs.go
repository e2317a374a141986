package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

type usgsResponse struct {
	Features []usgsFeature `json:"features"`
}

type usgsFeature struct {
	ID         string         `json:"id"`
	Properties usgsProperties `json:"properties"`
	Geometry   usgsGeometry   `json:"geometry"`
}
type usgsGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}
type usgsProperties struct {
	Mag     float64 `json:"mag"`
	Place   string  `json:"place"`
	Time    int64   `json:"time"` // unix millis
	Title   string  `json:"title"`
	Tsunami int     `json:"tsunami"` // 0 or 1
}

func (m *Manager) pollUSGS(ctx context.Context, url string) ([]models.Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data usgsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	alerts := make([]models.Alert, 0, len(data.Features))
	for _, f := range data.Features {
		desc := fmt.Sprintf("Magnitude %.1f earthquake reported %s.", f.Properties.Mag, f.Properties.Place)
		if f.Properties.Tsunami == 1 {
			desc += " A tsunami advisory may be in effect for nearby coasts."
		}

		alert := models.Alert{
			ID:          "usgs_" + f.ID,
			Title:       f.Properties.Title,
			Description: desc,
			Location:    f.Properties.Place,
			Level:       magnitudeLevel(f.Properties.Mag),
			Timestamp:   time.UnixMilli(f.Properties.Time).UTC().Format(displayLayout),
		}
		if len(f.Geometry.Coordinates) >= 2 {
			alert.Coordinates = &models.Coordinates{
				Latitude:  f.Geometry.Coordinates[1],
				Longitude: f.Geometry.Coordinates[0],
			}
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func magnitudeLevel(mag float64) models.AlertLevel {
	switch {
	case mag >= 6.0:
		return models.AlertLevelHigh
	case mag >= 4.5:
		return models.AlertLevelModerate
	default:
		return models.AlertLevelLow
	}
}
