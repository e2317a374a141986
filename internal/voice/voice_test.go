package voice

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedRecognizer plays one scripted run per Listen call. Once the script
// is exhausted, runs stay open until cancelled.
type scriptedRecognizer struct {
	mu        sync.Mutex
	runs      [][]Event
	calls     int
	listenErr error
}

func (r *scriptedRecognizer) Listen(ctx context.Context, lang string) (<-chan Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.listenErr != nil {
		return nil, r.listenErr
	}

	ch := make(chan Event)
	if len(r.runs) == 0 {
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch, nil
	}

	run := r.runs[0]
	r.runs = r.runs[1:]
	go func() {
		defer close(ch)
		for _, ev := range run {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (r *scriptedRecognizer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case text, ok := <-ch:
		require.True(t, ok, "transcripts closed early")
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for transcript")
		return ""
	}
}

func drain(t *testing.T, ch <-chan string) []string {
	t.Helper()
	var out []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case text, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, text)
		case <-timeout:
			t.Fatal("timed out waiting for transcripts to close")
			return out
		}
	}
}

func TestSession_RestartsAfterRunEnds(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &scriptedRecognizer{runs: [][]Event{
		{{Text: "flo", Final: false}, {Text: "flood in Kochi", Final: true}},
		{{Text: "need shelter", Final: true}},
	}}
	s := NewSession(rec, clock, 100*time.Millisecond)

	require.NoError(t, s.Start(context.Background(), LangEnglishIndia))
	ch := s.Transcripts()

	assert.Equal(t, "flood in Kochi", receive(t, ch))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, 1, rec.callCount())
	clock.Advance(100 * time.Millisecond)

	assert.Equal(t, "need shelter", receive(t, ch))
	assert.True(t, s.Active())
	assert.Equal(t, 2, rec.callCount())

	s.Stop()
	assert.False(t, s.Active())
	assert.NoError(t, s.Err())
	assert.Empty(t, drain(t, ch))
}

func TestSession_ErrorEventDeactivates(t *testing.T) {
	boom := errors.New("no-speech")
	rec := &scriptedRecognizer{runs: [][]Event{
		{{Text: "hello", Final: true}, {Err: boom}},
	}}
	s := NewSession(rec, clockwork.NewFakeClock(), DefaultRestartDelay)

	require.NoError(t, s.Start(context.Background(), LangHindiIndia))
	assert.Equal(t, []string{"hello"}, drain(t, s.Transcripts()))

	assert.False(t, s.Active())
	assert.ErrorIs(t, s.Err(), boom)
	assert.Equal(t, 1, rec.callCount())

	s.Stop()
}

func TestSession_ListenFailure(t *testing.T) {
	denied := errors.New("microphone permission denied")
	rec := &scriptedRecognizer{listenErr: denied}
	s := NewSession(rec, clockwork.NewFakeClock(), 0)

	require.NoError(t, s.Start(context.Background(), LangEnglishIndia))
	assert.Empty(t, drain(t, s.Transcripts()))
	assert.False(t, s.Active())
	assert.ErrorIs(t, s.Err(), denied)
}

func TestSession_StartRules(t *testing.T) {
	rec := &scriptedRecognizer{}
	s := NewSession(rec, clockwork.NewFakeClock(), 0)

	err := s.Start(context.Background(), "fr-FR")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.False(t, s.Active())
	assert.Nil(t, s.Transcripts())

	require.NoError(t, s.Start(context.Background(), LangEnglishIndia))
	first := s.Transcripts()
	require.NoError(t, s.Start(context.Background(), LangEnglishIndia))
	assert.Equal(t, first, s.Transcripts())

	s.Stop()
	s.Stop()
	assert.False(t, s.Active())
}

func TestSession_StopOnParentCancel(t *testing.T) {
	rec := &scriptedRecognizer{}
	s := NewSession(rec, clockwork.NewFakeClock(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx, LangEnglishIndia))
	cancel()

	assert.Empty(t, drain(t, s.Transcripts()))
	assert.False(t, s.Active())
	assert.NoError(t, s.Err())
}

func TestSession_Toggle(t *testing.T) {
	s := NewSession(&scriptedRecognizer{}, clockwork.NewFakeClock(), 0)
	ctx := context.Background()

	active, err := s.Toggle(ctx, LangEnglishIndia)
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, s.Active())

	active, err = s.Toggle(ctx, LangEnglishIndia)
	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, s.Active())
}

func TestLineRecognizer_FeedsSession(t *testing.T) {
	rec := NewLineRecognizer(strings.NewReader("flood here\n\n   \nhelp me\n"))
	s := NewSession(rec, clockwork.NewFakeClock(), 0)

	require.NoError(t, s.Start(context.Background(), LangEnglishIndia))
	assert.Equal(t, []string{"flood here", "help me"}, drain(t, s.Transcripts()))
	assert.ErrorIs(t, s.Err(), io.EOF)
	assert.False(t, s.Active())
}

func TestLineRecognizer_OneUtterancePerRun(t *testing.T) {
	rec := NewLineRecognizer(strings.NewReader("first\nsecond\n"))
	ctx := context.Background()

	for _, want := range []string{"first", "second"} {
		events, err := rec.Listen(ctx, LangEnglishIndia)
		require.NoError(t, err)

		var got []Event
		for ev := range events {
			got = append(got, ev)
		}
		require.Len(t, got, 1)
		assert.Equal(t, want, got[0].Text)
		assert.True(t, got[0].Final)
	}

	events, err := rec.Listen(ctx, LangEnglishIndia)
	require.NoError(t, err)
	ev := <-events
	assert.ErrorIs(t, ev.Err, io.EOF)
}
