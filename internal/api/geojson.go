package api

import (
	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func pointGeometry(c *models.Coordinates) Geometry {
	return Geometry{
		Type:        "Point",
		Coordinates: []float64{c.Longitude, c.Latitude},
	}
}

// toGeoJSON builds the map layer: one point per positioned alert plus the
// user's own position when known. Alerts without coordinates are skipped.
func toGeoJSON(alerts []models.Alert, user *models.Location) FeatureCollection {
	features := make([]Feature, 0, len(alerts)+1)

	for _, a := range alerts {
		if a.Coordinates == nil {
			continue
		}
		features = append(features, Feature{
			Type:     "Feature",
			Geometry: pointGeometry(a.Coordinates),
			Properties: map[string]any{
				"kind":      "alert",
				"id":        a.ID,
				"title":     a.Title,
				"location":  a.Location,
				"level":     a.Level.String(),
				"timestamp": a.Timestamp,
			},
		})
	}

	if user != nil && user.Coordinates != nil {
		features = append(features, Feature{
			Type:     "Feature",
			Geometry: pointGeometry(user.Coordinates),
			Properties: map[string]any{
				"kind":     "user",
				"location": user.Format(),
			},
		})
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
