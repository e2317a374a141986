package assistant

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

// Responder produces the assistant's reply to one user message.
type Responder interface {
	Respond(ctx context.Context, text string, loc *models.Location) (string, error)
}

// RuleResponder answers from the keyword table after a short delay so the
// client can show a typing indicator.
type RuleResponder struct {
	clock clockwork.Clock
	delay time.Duration
}

func NewRuleResponder(clock clockwork.Clock, delay time.Duration) *RuleResponder {
	return &RuleResponder{clock: clock, delay: delay}
}

func (r *RuleResponder) Respond(ctx context.Context, text string, loc *models.Location) (string, error) {
	if r.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-r.clock.After(r.delay):
		}
	}
	return ClassifyAndRespond(text, loc), nil
}
