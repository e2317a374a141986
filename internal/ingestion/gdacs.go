package ingestion

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

type gdacsRSS struct {
	Channel gdacsChannel `xml:"channel"`
}
type gdacsChannel struct {
	Items []gdacsItem `xml:"item"`
}
type gdacsItem struct {
	Title       string      `xml:"title"`
	Description string      `xml:"description"`
	PubDate     string      `xml:"pubDate"`
	EventType   string      `xml:"http://www.gdacs.org eventtype"`
	AlertLevel  string      `xml:"http://www.gdacs.org alertlevel"`
	EventID     string      `xml:"http://www.gdacs.org eventid"`
	Country     string      `xml:"http://www.gdacs.org country"`
	Point       *gdacsPoint `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# Point"`
}
type gdacsPoint struct {
	Lat  float64 `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# lat"`
	Long float64 `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# long"`
}

func (m *Manager) pollGDACS(ctx context.Context, url string) ([]models.Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data gdacsRSS
	if err := xml.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	alerts := make([]models.Alert, 0, len(data.Channel.Items))
	for _, item := range data.Channel.Items {
		if item.EventID == "" {
			slog.Warn("GDACS item without event id", "title", item.Title)
			continue
		}

		alert := models.Alert{
			ID:          "gdacs_" + strings.ToLower(item.EventType) + "_" + item.EventID,
			Title:       item.Title,
			Description: item.Description,
			Location:    item.Country,
			Level:       mapGDACSAlertLevel(item.AlertLevel),
			Timestamp:   displayTime(item.PubDate),
		}
		if item.Point != nil {
			alert.Coordinates = &models.Coordinates{Latitude: item.Point.Lat, Longitude: item.Point.Long}
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func mapGDACSAlertLevel(level string) models.AlertLevel {
	switch strings.ToLower(level) {
	case "red":
		return models.AlertLevelHigh
	case "orange":
		return models.AlertLevelModerate
	default:
		return models.AlertLevelLow
	}
}

// displayTime normalizes an RSS date for display; unparseable dates pass through.
func displayTime(pubDate string) string {
	pubDate = strings.TrimSpace(pubDate)
	t, err := time.Parse(time.RFC1123, pubDate)
	if err != nil {
		return pubDate
	}
	return t.UTC().Format(displayLayout)
}

const displayLayout = "02 Jan 2006 15:04 UTC"
