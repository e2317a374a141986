package assistant

import (
	"context"
	"net/http"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

// Assistant modes accepted by ASSISTANT_MODE.
const (
	ModeRules = "rules"
	ModeLLM   = "llm"
)

// Router sends messages to the external chat model when the mode asks for it
// and a key is available, otherwise to the rule table. The key is looked up
// per message so a newly stored key takes effect immediately.
type Router struct {
	Mode       string
	Rules      Responder
	APIKey     func(ctx context.Context) string
	Model      string
	URL        string
	HTTPClient *http.Client
}

func (r *Router) Respond(ctx context.Context, text string, loc *models.Location) (string, error) {
	if r.Mode == ModeLLM && r.APIKey != nil {
		if key := r.APIKey(ctx); key != "" {
			return NewChatClient(key, r.Model, r.URL, r.HTTPClient).Respond(ctx, text, loc)
		}
	}
	return r.Rules.Respond(ctx, text, loc)
}
