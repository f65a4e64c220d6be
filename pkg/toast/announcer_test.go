package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	mu    sync.Mutex
	texts []string
}

func (s *sinkRecorder) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
}

func (s *sinkRecorder) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.texts))
	copy(out, s.texts)
	return out
}

func TestAnnouncer_AnnounceFormatsTitleAndMessage(t *testing.T) {
	t.Parallel()

	sink := &sinkRecorder{}
	a := NewAnnouncer(sink.write)
	defer a.Stop()

	a.Announce("Export complete", "report.pdf is ready")

	assert.Equal(t, "Export complete: report.pdf is ready", a.Current())
	assert.Equal(t, []string{"Export complete: report.pdf is ready"}, sink.all())
}

func TestAnnouncer_MessageOnlyWithoutTitle(t *testing.T) {
	t.Parallel()

	a := NewAnnouncer(nil)
	defer a.Stop()

	a.Announce("", "saved")
	assert.Equal(t, "saved", a.Current())
}

func TestAnnouncer_ClearsAfterDelay(t *testing.T) {
	t.Parallel()

	sink := &sinkRecorder{}
	a := NewAnnouncer(sink.write, WithClearDelay(50*time.Millisecond))
	defer a.Stop()

	a.Announce("T", "m")

	require.Eventually(t, func() bool { return a.Current() == "" },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"T: m", ""}, sink.all())
}

func TestAnnouncer_IdenticalTextReannounced(t *testing.T) {
	t.Parallel()

	sink := &sinkRecorder{}
	a := NewAnnouncer(sink.write, WithClearDelay(30*time.Millisecond))
	defer a.Stop()

	a.Announce("T", "m")
	require.Eventually(t, func() bool { return a.Current() == "" },
		time.Second, 5*time.Millisecond)

	// The clear makes a second identical announcement observable again.
	a.Announce("T", "m")
	assert.Equal(t, "T: m", a.Current())
}

func TestAnnouncer_BurstKeepsLatest(t *testing.T) {
	t.Parallel()

	a := NewAnnouncer(nil, WithClearDelay(time.Second))
	defer a.Stop()

	a.Announce("A", "1")
	a.Announce("B", "2")
	a.Announce("C", "3")

	assert.Equal(t, "C: 3", a.Current())
}

func TestAnnouncer_NilSink(t *testing.T) {
	t.Parallel()

	a := NewAnnouncer(nil, WithClearDelay(20*time.Millisecond))
	defer a.Stop()

	a.Announce("T", "m")
	require.Eventually(t, func() bool { return a.Current() == "" },
		time.Second, 5*time.Millisecond)
}
