// Command disaster-assistant is a terminal client for the disaster assistant.
// It answers one-off questions, lists alerts for a location, and runs an
// interactive chat that reads utterances line by line from stdin.
//
// Usage:
//
//	disaster-assistant ask "is there a flood warning" --state Kerala
//	disaster-assistant alerts --state Odisha
//	disaster-assistant chat --state Kerala --district Wayanad --lang en-IN
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/go-disaster-dashboard/internal/assistant"
	"github.com/mr1hm/go-disaster-dashboard/internal/config"
	"github.com/mr1hm/go-disaster-dashboard/internal/logging"
	"github.com/mr1hm/go-disaster-dashboard/internal/voice"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	// stdout belongs to the conversation
	logger := logging.New(os.Stderr, cfg.Logging.Level)

	clock := clockwork.NewRealClock()
	a := &app{
		in:    os.Stdin,
		clock: clock,
		responder: &assistant.Router{
			Mode:  cfg.Assistant.Mode,
			Rules: assistant.NewRuleResponder(clock, cfg.Assistant.ResponseDelay),
			APIKey: func(context.Context) string {
				return cfg.Assistant.OpenAIKey
			},
			Model: cfg.Assistant.Model,
			URL:   cfg.Assistant.URL,
		},
		restartDelay: voice.DefaultRestartDelay,
		logger:       logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
