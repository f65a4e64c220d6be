package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/complykit/toastkit/pkg/logger"
)

// defaultTickInterval drives the visual progress countdown.
const defaultTickInterval = 50 * time.Millisecond

// ArmOptions selects which timers Arm starts for a record.
type ArmOptions struct {
	// AutoClose arms the deadline that dismisses the record when it fires.
	AutoClose bool

	// Progress arms the fixed-interval tick feeding the visual countdown.
	// The tick only drives the indicator; reaching zero never dismisses.
	Progress bool

	// ExtendOnPause makes Pause suspend the deadline and Resume rearm it
	// with the remaining time. When false the deadline keeps running while
	// paused and only the progress fraction freezes.
	ExtendOnPause bool
}

type timerEntry struct {
	id          string
	duration    time.Duration
	deadline    *time.Timer
	deadlineAt  time.Time
	hasDeadline bool
	extend      bool
	paused      bool
	remaining   time.Duration // captured while paused in extend mode
	fraction    float64       // 100 -> 0
	stop        chan struct{}
}

// TimerScheduler owns the per-notification deadline and progress timers.
// Each armed record has at most one live deadline and one live ticker; Cancel
// tears both down unconditionally and is safe on unknown or already-cancelled
// ids. All methods are safe for concurrent use.
type TimerScheduler struct {
	entries  map[string]*timerEntry
	tick     time.Duration
	onExpire func(id string)
	onTick   func(id string, remaining float64)
	logger   *slog.Logger
	mu       sync.Mutex
}

// SchedulerOption configures a TimerScheduler.
type SchedulerOption func(*TimerScheduler)

// WithTickInterval sets the progress tick interval.
func WithTickInterval(d time.Duration) SchedulerOption {
	return func(s *TimerScheduler) {
		if d > 0 {
			s.tick = d
		}
	}
}

// WithTickFunc registers a callback invoked on every progress tick with the
// remaining fraction (100 down to 0).
func WithTickFunc(fn func(id string, remaining float64)) SchedulerOption {
	return func(s *TimerScheduler) {
		s.onTick = fn
	}
}

// WithSchedulerLogger sets the logger for the scheduler.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *TimerScheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewTimerScheduler creates a scheduler that calls onExpire when a record's
// deadline fires. onExpire runs on a timer goroutine and must not call back
// into the scheduler while holding locks of its own that Arm or Cancel are
// called under.
func NewTimerScheduler(onExpire func(id string), opts ...SchedulerOption) *TimerScheduler {
	s := &TimerScheduler{
		entries:  make(map[string]*timerEntry),
		tick:     defaultTickInterval,
		onExpire: onExpire,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Arm starts timers for the record. A non-positive duration arms nothing:
// such records live until explicitly dismissed. Arming an id that is already
// armed cancels the previous timers first.
func (s *TimerScheduler) Arm(id string, d time.Duration, opts ArmOptions) {
	if d <= 0 || (!opts.AutoClose && !opts.Progress) {
		return
	}

	s.Cancel(id)

	e := &timerEntry{
		id:       id,
		duration: d,
		extend:   opts.ExtendOnPause,
		fraction: 100,
		stop:     make(chan struct{}),
	}

	s.mu.Lock()
	s.entries[id] = e
	if opts.AutoClose {
		e.hasDeadline = true
		e.deadlineAt = time.Now().Add(d)
		e.deadline = time.AfterFunc(d, func() { s.expire(id, e) })
	}
	s.mu.Unlock()

	if opts.Progress {
		go s.runTicker(id, e)
	}
}

// Cancel clears the deadline and the progress ticker for the record.
// Safe to call on an already-cancelled or never-armed id.
func (s *TimerScheduler) Cancel(id string) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	if e.deadline != nil {
		e.deadline.Stop()
	}
	close(e.stop)
	s.mu.Unlock()
}

// CancelAll tears down every live timer.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	for id, e := range s.entries {
		delete(s.entries, id)
		if e.deadline != nil {
			e.deadline.Stop()
		}
		close(e.stop)
	}
	s.mu.Unlock()
}

// Pause suspends the record's countdown. Progress ticks become no-ops; in
// extend mode the deadline is stopped with its remaining time captured for
// Resume.
func (s *TimerScheduler) Pause(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.paused {
		return
	}
	e.paused = true

	if e.hasDeadline && e.extend && e.deadline != nil {
		if e.deadline.Stop() {
			e.remaining = time.Until(e.deadlineAt)
			if e.remaining <= 0 {
				e.remaining = time.Millisecond
			}
		}
	}
}

// Resume restarts the record's countdown after a Pause.
func (s *TimerScheduler) Resume(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !e.paused {
		return
	}
	e.paused = false

	if e.hasDeadline && e.extend && e.remaining > 0 {
		remaining := e.remaining
		e.remaining = 0
		e.deadlineAt = time.Now().Add(remaining)
		e.deadline = time.AfterFunc(remaining, func() { s.expire(id, e) })
	}
}

// Active reports whether the record currently has live timers.
func (s *TimerScheduler) Active(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	return ok
}

// Progress returns the remaining fraction (100 down to 0) for an armed
// record with a progress ticker.
func (s *TimerScheduler) Progress(id string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return 0, false
	}
	return e.fraction, true
}

// expire runs on the deadline timer goroutine. Entry identity is checked so
// a stale fire after Cancel and re-Arm of the same id can never dismiss the
// wrong record.
func (s *TimerScheduler) expire(id string, e *timerEntry) {
	s.mu.Lock()
	cur, ok := s.entries[id]
	if !ok || cur != e {
		s.mu.Unlock()
		s.logger.Debug("stale deadline fire ignored", logger.NotificationID(id))
		return
	}
	if e.paused && e.extend {
		// Pause raced the fire: the timer was already running when Stop was
		// called. Defer to Resume, which will rearm with a minimal window.
		if e.remaining <= 0 {
			e.remaining = time.Millisecond
		}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if s.onExpire != nil {
		s.onExpire(id)
	}
}

// runTicker decrements the remaining fraction at the tick interval until the
// entry is cancelled. Paused entries hold their fraction.
func (s *TimerScheduler) runTicker(id string, e *timerEntry) {
	t := time.NewTicker(s.tick)
	defer t.Stop()

	step := 100 * float64(s.tick) / float64(e.duration)

	for {
		select {
		case <-e.stop:
			return
		case <-t.C:
			s.mu.Lock()
			if s.entries[id] != e {
				s.mu.Unlock()
				return
			}
			if e.paused {
				s.mu.Unlock()
				continue
			}
			e.fraction -= step
			if e.fraction < 0 {
				e.fraction = 0
			}
			remaining := e.fraction
			s.mu.Unlock()

			if s.onTick != nil {
				s.onTick(id, remaining)
			}
		}
	}
}
