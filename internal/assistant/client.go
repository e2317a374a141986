package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

const DefaultChatURL = "https://api.openai.com/v1/chat/completions"

const systemPersona = "You are an emergency and disaster response assistant for India. Give short, practical " +
	"safety guidance, mention the relevant Indian helpline numbers (112 emergency, 108 ambulance, 101 fire, " +
	"1070 state and 1077 district disaster control rooms) and always advise following local authorities."

var ErrMissingAPIKey = errors.New("chat api key not configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ChatClient talks to an OpenAI compatible chat completions endpoint.
type ChatClient struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewChatClient builds a client. httpClient may be nil; no timeout is set on
// the default client, callers bound requests through ctx.
func NewChatClient(apiKey, model, url string, httpClient *http.Client) *ChatClient {
	if url == "" {
		url = DefaultChatURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ChatClient{
		apiKey:     apiKey,
		model:      model,
		url:        url,
		httpClient: httpClient,
	}
}

// SystemPrompt is the persona plus the user's location as context.
func SystemPrompt(loc *models.Location) string {
	place := loc.Format()
	if place == "" {
		place = "unknown (not set)"
	}
	return systemPersona + " The user's current location is: " + place + "."
}

func (c *ChatClient) Respond(ctx context.Context, text string, loc *models.Location) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(loc)},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status code: %d - body: %s", resp.StatusCode, b)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("error decoding resp.Body: %w", err)
	}
	if data.Error != nil {
		return "", fmt.Errorf("chat api error: %s", data.Error.Message)
	}
	if len(data.Choices) == 0 || strings.TrimSpace(data.Choices[0].Message.Content) == "" {
		return "", errors.New("chat api response has no message content")
	}

	return data.Choices[0].Message.Content, nil
}
