package assistant

import (
	"fmt"
	"strings"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

// Classify returns the first category whose keywords occur in text.
func Classify(text string) (Category, bool) {
	lower := strings.ToLower(text)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c, true
			}
		}
	}
	return Category{}, false
}

// MessageCategory names the keyword class of text, or "fallback" when no
// category matches. It depends only on the text, never on which responder
// answers it.
func MessageCategory(text string) string {
	if c, ok := Classify(text); ok {
		return c.Name
	}
	return "fallback"
}

// ClassifyAndRespond picks the canned response for text, using the state
// override when one exists for loc. It never calls out to a model.
func ClassifyAndRespond(text string, loc *models.Location) string {
	c, ok := Classify(text)
	if !ok {
		return fallbackResponse(loc)
	}
	if loc.Known() {
		if tmpl, ok := c.Overrides[loc.State]; ok {
			return fmt.Sprintf(tmpl, loc.Format())
		}
	}
	return c.Default
}

func fallbackResponse(loc *models.Location) string {
	place := loc.Format()
	if place == "" {
		place = genericPlace
	}
	return fmt.Sprintf(fallbackTemplate, place)
}
