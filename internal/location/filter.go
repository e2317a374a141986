package location

import (
	"strings"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

// FilterAlertsByLocation keeps the alerts whose free-text location mentions the
// state or district of loc. Matching is a case-insensitive substring test, so
// loose matches such as a district name embedded in another place name are
// kept. A nil or unknown location returns alerts untouched.
func FilterAlertsByLocation(alerts []models.Alert, loc *models.Location) []models.Alert {
	if !loc.Known() {
		return alerts
	}

	state := strings.ToLower(loc.State)
	district := strings.ToLower(loc.District)

	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		where := strings.ToLower(a.Location)
		matchesState := state != "" && strings.Contains(where, state)
		matchesDistrict := district != "" && strings.Contains(where, district)
		if matchesState || matchesDistrict {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// GroupByLevel splits alerts into high priority and the rest, preserving order.
func GroupByLevel(alerts []models.Alert) (high, other []models.Alert) {
	high = make([]models.Alert, 0)
	other = make([]models.Alert, 0)
	for _, a := range alerts {
		if models.ParseAlertLevel(string(a.Level)) == models.AlertLevelHigh {
			high = append(high, a)
		} else {
			other = append(other, a)
		}
	}
	return high, other
}
