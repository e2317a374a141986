package models

type SafetyTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ContactPriority string

const (
	ContactPriorityHigh   ContactPriority = "high"
	ContactPriorityNormal ContactPriority = "normal"
)

type EmergencyContact struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Number   string          `json:"number"`
	Priority ContactPriority `json:"priority"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// APIKeys are credentials for optional external services.
type APIKeys struct {
	OpenAI     string `json:"openai,omitempty"`
	GoogleMaps string `json:"googlemaps,omitempty"`
}
