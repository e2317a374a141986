package models

// UnknownState is stored when a location was captured from coordinates only.
const UnknownState = "Unknown"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	State       string       `json:"state"`
	District    string       `json:"district,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Known reports whether the location carries a usable state for matching.
// Nil receivers are allowed.
func (l *Location) Known() bool {
	return l != nil && l.State != "" && l.State != UnknownState
}

// Format renders "<district>, <state>" or "<state>". Unknown locations render as "".
func (l *Location) Format() string {
	if !l.Known() {
		return ""
	}
	if l.District != "" {
		return l.District + ", " + l.State
	}
	return l.State
}

// Clone returns a deep copy so callers never share the coordinates pointer.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	c := *l
	if l.Coordinates != nil {
		coords := *l.Coordinates
		c.Coordinates = &coords
	}
	return &c
}
