package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-disaster-dashboard/internal/assistant"
	"github.com/mr1hm/go-disaster-dashboard/internal/location"
	"github.com/mr1hm/go-disaster-dashboard/internal/models"
	"github.com/mr1hm/go-disaster-dashboard/internal/voice"
)

type failingResponder struct{}

func (failingResponder) Respond(ctx context.Context, text string, loc *models.Location) (string, error) {
	return "", errors.New("upstream unavailable")
}

func newTestApp(input string, responder assistant.Responder) *app {
	clock := clockwork.NewFakeClock()
	if responder == nil {
		responder = assistant.NewRuleResponder(clock, 0)
	}
	return &app{
		in:        strings.NewReader(input),
		clock:     clock,
		responder: responder,
	}
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := a.rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAsk_UsesLocation(t *testing.T) {
	out, err := execute(t, newTestApp("", nil), "ask", "there", "is", "a", "flood", "--state", "Kerala")
	require.NoError(t, err)
	assert.Contains(t, out, "KERALA")
	assert.Contains(t, out, "1078")
}

func TestAsk_WithoutLocation(t *testing.T) {
	out, err := execute(t, newTestApp("", nil), "ask", "what should I do")
	require.NoError(t, err)
	assert.Contains(t, out, "your area")
}

func TestAsk_UnknownState(t *testing.T) {
	_, err := execute(t, newTestApp("", nil), "ask", "flood", "--state", "Atlantis")
	assert.ErrorIs(t, err, location.ErrUnknownState)
}

func TestAlerts_Filtered(t *testing.T) {
	out, err := execute(t, newTestApp("", nil), "alerts", "--state", "Kerala")
	require.NoError(t, err)
	assert.Contains(t, out, "High priority:")
	assert.Contains(t, out, "Flood Warning")
	assert.Contains(t, out, "Flash Flood Warning")
	assert.NotContains(t, out, "Cyclone Watch")
	assert.NotContains(t, out, "Other alerts:")
}

func TestAlerts_NoMatches(t *testing.T) {
	out, err := execute(t, newTestApp("", nil), "alerts", "--state", "Goa")
	require.NoError(t, err)
	assert.Equal(t, "No alerts for Goa.\n", out)
}

func TestAlerts_AllWithoutLocation(t *testing.T) {
	out, err := execute(t, newTestApp("", nil), "alerts")
	require.NoError(t, err)
	assert.Contains(t, out, "Cyclone Watch")
	assert.Contains(t, out, "Heat Wave Advisory")
	assert.Contains(t, out, "Other alerts:")
}

func TestChat_ConversationFromInput(t *testing.T) {
	a := newTestApp("my house is flooding\n\nwhere is the nearest shelter\n", nil)

	out, err := execute(t, a, "chat", "--state", "Kerala", "--district", "Wayanad")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "assistant: "+assistant.Greeting, lines[0])
	assert.Equal(t, "you: my house is flooding", lines[1])
	assert.Contains(t, lines[2], "KERALA")
	assert.Contains(t, lines[2], "Wayanad, Kerala")
	assert.Equal(t, "you: where is the nearest shelter", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "assistant: "))
}

func TestChat_ResponderFailureApologizes(t *testing.T) {
	a := newTestApp("help\n", failingResponder{})

	out, err := execute(t, a, "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant: "+assistant.ApologyMessage)
}

func TestChat_UnsupportedLanguage(t *testing.T) {
	_, err := execute(t, newTestApp("help\n", nil), "chat", "--lang", "fr-FR")
	assert.ErrorIs(t, err, voice.ErrUnsupportedLanguage)
}
