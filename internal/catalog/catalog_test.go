package catalog

import (
	"testing"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

func TestSortContacts_HighFirstStable(t *testing.T) {
	in := []models.EmergencyContact{
		{ID: "a", Priority: models.ContactPriorityNormal},
		{ID: "b", Priority: models.ContactPriorityHigh},
		{ID: "c", Priority: models.ContactPriorityNormal},
		{ID: "d", Priority: models.ContactPriorityHigh},
	}

	got := SortContacts(in)
	want := []string{"b", "d", "a", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if in[0].ID != "a" {
		t.Error("input slice was modified")
	}
}

func TestSafetyTips_Filter(t *testing.T) {
	if n := len(SafetyTips("")); n != 11 {
		t.Errorf("expected 11 tips, got %d", n)
	}
	for _, tip := range SafetyTips(TipsFlood) {
		if tip.Category != TipsFlood {
			t.Errorf("unexpected category %s", tip.Category)
		}
	}
	if n := len(SafetyTips("volcano")); n != 0 {
		t.Errorf("expected no tips for unknown category, got %d", n)
	}
}

func TestAlerts_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Alerts() {
		if seen[a.ID] {
			t.Errorf("duplicate alert id %s", a.ID)
		}
		seen[a.ID] = true
	}
}
