package toast

import (
	"sync"
	"time"
)

// defaultClearDelay is how long an announcement stays in the channel before
// it is cleared so assistive-technology change detection re-reads the next
// identical text.
const defaultClearDelay = time.Second

// Announcer serialises notification text into a single assistive-technology
// announcement channel. Only one announcement is outstanding at a time; a
// rapid burst keeps the most recent one, which is an accepted trade-off
// rather than a queueing defect.
type Announcer struct {
	sink       func(text string)
	delay      time.Duration
	clearTimer *time.Timer
	current    string
	mu         sync.Mutex
}

// AnnouncerOption configures an Announcer.
type AnnouncerOption func(*Announcer)

// WithClearDelay sets how long an announcement stays up before being cleared.
func WithClearDelay(d time.Duration) AnnouncerOption {
	return func(a *Announcer) {
		if d > 0 {
			a.delay = d
		}
	}
}

// NewAnnouncer creates an announcer writing to sink. A nil sink is allowed;
// the announcement is then only observable through Current.
func NewAnnouncer(sink func(text string), opts ...AnnouncerOption) *Announcer {
	a := &Announcer{
		sink:  sink,
		delay: defaultClearDelay,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Announce pushes "title: message" into the channel and schedules the clear.
// A pending clear from a previous announcement is superseded.
func (a *Announcer) Announce(title, message string) {
	text := message
	if title != "" {
		text = title + ": " + message
	}

	a.mu.Lock()
	if a.clearTimer != nil {
		a.clearTimer.Stop()
	}
	a.current = text
	a.clearTimer = time.AfterFunc(a.delay, a.clear)
	sink := a.sink
	a.mu.Unlock()

	if sink != nil {
		sink(text)
	}
}

// Current returns the text currently in the announcement channel, empty once
// cleared.
func (a *Announcer) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Stop cancels any pending clear. Used on engine shutdown.
func (a *Announcer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.clearTimer != nil {
		a.clearTimer.Stop()
		a.clearTimer = nil
	}
}

func (a *Announcer) clear() {
	a.mu.Lock()
	a.current = ""
	sink := a.sink
	a.mu.Unlock()

	if sink != nil {
		sink("")
	}
}
