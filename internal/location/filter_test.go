package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

func sampleAlerts() []models.Alert {
	return []models.Alert{
		{ID: "1", Title: "Flood Warning", Location: "Kochi, Kerala", Level: models.AlertLevelHigh},
		{ID: "2", Title: "Cyclone Watch", Location: "Odisha Coast", Level: models.AlertLevelModerate},
		{ID: "3", Title: "Landslide Alert", Location: "Uttarakhand", Level: models.AlertLevelLow},
		{ID: "4", Title: "Flash Flood Warning", Location: "Wayanad, Kerala", Level: models.AlertLevelHigh},
		{ID: "5", Title: "Heat Wave Advisory", Location: "Rajasthan", Level: models.AlertLevelHigh},
	}
}

func ids(alerts []models.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAlertsByLocation_NilIsIdentity(t *testing.T) {
	alerts := sampleAlerts()
	assert.Equal(t, alerts, FilterAlertsByLocation(alerts, nil))
}

func TestFilterAlertsByLocation_UnknownStateIsIdentity(t *testing.T) {
	alerts := sampleAlerts()
	loc := &models.Location{
		State:       models.UnknownState,
		Coordinates: &models.Coordinates{Latitude: 9.93, Longitude: 76.26},
	}
	assert.Equal(t, alerts, FilterAlertsByLocation(alerts, loc))
}

func TestFilterAlertsByLocation_State(t *testing.T) {
	got := FilterAlertsByLocation(sampleAlerts(), &models.Location{State: "Kerala"})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestFilterAlertsByLocation_TwoAlertExample(t *testing.T) {
	alerts := []models.Alert{
		{ID: "a", Location: "Kochi, Kerala"},
		{ID: "b", Location: "Odisha Coast"},
	}
	got := FilterAlertsByLocation(alerts, &models.Location{State: "Kerala"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterAlertsByLocation_CaseInsensitive(t *testing.T) {
	got := FilterAlertsByLocation(sampleAlerts(), &models.Location{State: "ODISHA"})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterAlertsByLocation_DistrictOrState(t *testing.T) {
	alerts := []models.Alert{
		{ID: "1", Location: "Wayanad"},
		{ID: "2", Location: "Puri, Odisha"},
		{ID: "3", Location: "Chennai"},
	}
	got := FilterAlertsByLocation(alerts, &models.Location{State: "Kerala", District: "Wayanad"})
	assert.Equal(t, []string{"1"}, ids(got))

	got = FilterAlertsByLocation(alerts, &models.Location{State: "Odisha", District: "Chennai"})
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestFilterAlertsByLocation_SubstringFalsePositiveAccepted(t *testing.T) {
	alerts := []models.Alert{{ID: "1", Location: "Goalpara, Assam"}}
	got := FilterAlertsByLocation(alerts, &models.Location{State: "Goa"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterAlertsByLocation_Empty(t *testing.T) {
	assert.Empty(t, FilterAlertsByLocation(nil, &models.Location{State: "Kerala"}))
	assert.Empty(t, FilterAlertsByLocation([]models.Alert{}, nil))
}

func TestFilterAlertsByLocation_MembershipLaw(t *testing.T) {
	locations := []*models.Location{
		{State: "Kerala"},
		{State: "Kerala", District: "Kochi"},
		{State: "Assam", District: "Wayanad"},
		{State: "Rajasthan"},
		{State: "Bihar", District: "Darbhanga"},
	}
	alerts := sampleAlerts()

	for _, loc := range locations {
		got := FilterAlertsByLocation(alerts, loc)
		kept := make(map[string]bool)
		for _, a := range got {
			kept[a.ID] = true
		}
		for _, a := range alerts {
			where := strings.ToLower(a.Location)
			want := strings.Contains(where, strings.ToLower(loc.State)) ||
				(loc.District != "" && strings.Contains(where, strings.ToLower(loc.District)))
			assert.Equal(t, want, kept[a.ID], "alert %s for %+v", a.ID, loc)
		}

		// idempotent
		assert.Equal(t, got, FilterAlertsByLocation(got, loc))
	}
}

func TestGroupByLevel(t *testing.T) {
	alerts := append(sampleAlerts(), models.Alert{ID: "6", Level: "bogus"})
	high, other := GroupByLevel(alerts)
	assert.Equal(t, []string{"1", "4", "5"}, ids(high))
	assert.Equal(t, []string{"2", "3", "6"}, ids(other))
}
