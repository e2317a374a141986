package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
	"github.com/mr1hm/go-disaster-dashboard/internal/observability"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrRequestPending = errors.New("a response is still pending")
)

const Greeting = "Hello! I'm your AI assistant for emergency and disaster situations. How can I help you today?"

// ApologyMessage replaces any failed reply. Error details are only logged.
const ApologyMessage = "I'm sorry, I couldn't process your request right now. Please try again in a moment. " +
	"If this is an emergency, call 112."

// Conversation is the append-only chat history with at most one reply in flight.
type Conversation struct {
	responder Responder
	clock     clockwork.Clock
	metrics   *observability.Metrics

	mu       sync.Mutex
	messages []models.ChatMessage
	pending  bool
	wg       sync.WaitGroup
}

// NewConversation starts a history holding the greeting. metrics may be nil.
func NewConversation(responder Responder, clock clockwork.Clock, metrics *observability.Metrics) *Conversation {
	c := &Conversation{
		responder: responder,
		clock:     clock,
		metrics:   metrics,
	}
	c.messages = append(c.messages, c.newMessage(Greeting, models.SenderAssistant))
	return c
}

// Messages returns a copy of the history in order.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Submit appends the user's message and asks the responder for a reply in the
// background. The returned channel is closed once the reply, or the apology
// that replaces a failed one, has been appended. The reply is not tied to ctx
// cancellation: a late answer is still recorded.
func (c *Conversation) Submit(ctx context.Context, text string, loc *models.Location) (models.ChatMessage, <-chan struct{}, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, nil, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return models.ChatMessage{}, nil, ErrRequestPending
	}
	c.pending = true
	userMsg := c.newMessage(text, models.SenderUser)
	c.messages = append(c.messages, userMsg)
	c.mu.Unlock()

	// labelled by the input's keyword class in both modes
	if c.metrics != nil {
		c.metrics.ChatMessages.WithLabelValues(MessageCategory(text)).Inc()
	}

	done := make(chan struct{})
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(done)

		start := c.clock.Now()
		reply, err := c.responder.Respond(context.WithoutCancel(ctx), text, loc.Clone())
		if c.metrics != nil {
			c.metrics.ResponseDuration.Observe(c.clock.Since(start).Seconds())
		}
		if err != nil {
			slog.Error("assistant reply failed", "error", err)
			if c.metrics != nil {
				c.metrics.ResponderErrors.Inc()
			}
			reply = ApologyMessage
		}

		c.mu.Lock()
		c.messages = append(c.messages, c.newMessage(reply, models.SenderAssistant))
		c.pending = false
		c.mu.Unlock()
	}()

	return userMsg, done, nil
}

// Wait blocks until no reply is in flight.
func (c *Conversation) Wait() {
	c.wg.Wait()
}

func (c *Conversation) newMessage(content string, sender models.Sender) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: c.clock.Now(),
	}
}
