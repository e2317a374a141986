package models

import "strings"

type AlertLevel string

const (
	AlertLevelLow      AlertLevel = "low"
	AlertLevelModerate AlertLevel = "moderate"
	AlertLevelHigh     AlertLevel = "high"
)

// ParseAlertLevel maps free text to a level. Anything unrecognized is low.
func ParseAlertLevel(s string) AlertLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return AlertLevelHigh
	case "moderate":
		return AlertLevelModerate
	default:
		return AlertLevelLow
	}
}

func (l AlertLevel) String() string {
	return string(ParseAlertLevel(string(l)))
}

func (l AlertLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *AlertLevel) UnmarshalText(b []byte) error {
	*l = ParseAlertLevel(string(b))
	return nil
}

type Alert struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"` // free-text place name, e.g. "Kochi, Kerala"
	Level       AlertLevel   `json:"level"`
	Timestamp   string       `json:"timestamp"`             // display only, never parsed
	Coordinates *Coordinates `json:"coordinates,omitempty"` // set when the source reports a position
}
