// Package voice keeps a speech recognition session alive: it restarts the
// recognizer whenever a run ends on its own and stops on the first error.
package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	LangEnglishIndia = "en-IN"
	LangHindiIndia   = "hi-IN"

	DefaultRestartDelay = 250 * time.Millisecond
)

var ErrUnsupportedLanguage = errors.New("unsupported recognition language")

func SupportedLanguage(lang string) bool {
	return lang == LangEnglishIndia || lang == LangHindiIndia
}

// Event is one recognizer result. A non-nil Err ends the session.
type Event struct {
	Text  string
	Final bool
	Err   error
}

// Recognizer runs one recognition pass. The returned channel must be closed
// when the pass ends or ctx is cancelled.
type Recognizer interface {
	Listen(ctx context.Context, lang string) (<-chan Event, error)
}

type Session struct {
	recognizer   Recognizer
	clock        clockwork.Clock
	restartDelay time.Duration

	mu          sync.Mutex
	active      bool
	cancel      context.CancelFunc
	done        chan struct{}
	transcripts chan string
	err         error
}

func NewSession(recognizer Recognizer, clock clockwork.Clock, restartDelay time.Duration) *Session {
	return &Session{
		recognizer:   recognizer,
		clock:        clock,
		restartDelay: restartDelay,
	}
}

// Start begins listening in lang. Starting an active session is a no-op.
func (s *Session) Start(ctx context.Context, lang string) error {
	if !SupportedLanguage(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.active = true
	s.err = nil
	s.cancel = cancel
	s.done = make(chan struct{})
	s.transcripts = make(chan string)

	go s.run(runCtx, cancel, lang, s.transcripts, s.done)
	slog.Info("voice session started", "lang", lang)
	return nil
}

// Stop ends the session and waits for the listening loop to exit.
func (s *Session) Stop() {
	s.mu.Lock()
	s.active = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Toggle starts an inactive session or stops an active one and reports the
// new state.
func (s *Session) Toggle(ctx context.Context, lang string) (bool, error) {
	if s.Active() {
		s.Stop()
		return false, nil
	}
	if err := s.Start(ctx, lang); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Transcripts delivers final transcripts of the current run. It is closed
// when the session stops, and nil before the first Start.
func (s *Session) Transcripts() <-chan string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcripts
}

// Err returns the error that ended the last run, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) run(ctx context.Context, cancel context.CancelFunc, lang string, out chan<- string, done chan struct{}) {
	defer close(done)
	defer close(out)
	defer cancel()

	err := s.listen(ctx, lang, out)

	s.mu.Lock()
	if s.done == done {
		s.active = false
		s.err = err
	}
	s.mu.Unlock()
	slog.Info("voice session ended", "lang", lang)
}

func (s *Session) listen(ctx context.Context, lang string, out chan<- string) error {
	for {
		events, err := s.recognizer.Listen(ctx, lang)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("voice recognizer failed to start", "lang", lang, "error", err)
			return fmt.Errorf("error starting recognizer: %w", err)
		}

		for ev := range events {
			if ev.Err != nil {
				slog.Warn("voice recognition error", "lang", lang, "error", ev.Err)
				return ev.Err
			}
			text := strings.TrimSpace(ev.Text)
			if !ev.Final || text == "" {
				continue
			}
			select {
			case out <- text:
			case <-ctx.Done():
				return nil
			}
		}

		if ctx.Err() != nil {
			return nil
		}
		slog.Debug("voice recognition ended, restarting", "lang", lang, "delay", s.restartDelay)
		if s.restartDelay > 0 {
			select {
			case <-s.clock.After(s.restartDelay):
			case <-ctx.Done():
				return nil
			}
		}
	}
}
