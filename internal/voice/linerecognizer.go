package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// LineRecognizer treats each non-blank input line as one spoken utterance.
// Every Listen call yields a single final event and ends, so a Session
// restarts it for the next line. End of input is reported as io.EOF.
type LineRecognizer struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
}

func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{scanner: bufio.NewScanner(r)}
}

// Listen ignores lang. A read blocked on the underlying reader is not
// interrupted by ctx.
func (l *LineRecognizer) Listen(ctx context.Context, lang string) (<-chan Event, error) {
	events := make(chan Event, 1)
	go func() {
		defer close(events)

		l.mu.Lock()
		ev := l.next()
		l.mu.Unlock()

		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}()
	return events, nil
}

func (l *LineRecognizer) next() Event {
	for l.scanner.Scan() {
		if line := strings.TrimSpace(l.scanner.Text()); line != "" {
			return Event{Text: line, Final: true}
		}
	}
	if err := l.scanner.Err(); err != nil {
		return Event{Err: fmt.Errorf("error reading input: %w", err)}
	}
	return Event{Err: io.EOF}
}
