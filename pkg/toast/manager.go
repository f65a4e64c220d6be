package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/complykit/toastkit/pkg/broadcast"
	"github.com/complykit/toastkit/pkg/kv"
	"github.com/complykit/toastkit/pkg/logger"
)

// Manager is the notification engine. It owns the active set, the timers,
// the announcer and the optional dismissal history, and exposes the public
// API the rest of the application calls.
//
// A Manager is an explicit instance passed to whoever needs it; create one
// at process start and share it by reference. All methods are safe for
// concurrent use, and none of them panic or propagate errors for unknown
// ids or storage faults: failures are absorbed and logged so a caller's
// business flow is never interrupted by the notification subsystem.
type Manager struct {
	cfg       Config
	active    *activeSet
	sched     *TimerScheduler
	announcer *Announcer
	history   *History
	presenter Presenter
	feedback  Feedback
	analytics Recorder
	events    *broadcast.MemoryBroadcaster[Event]
	logger    *slog.Logger
	closed    bool
	mu        sync.Mutex

	// deferred option inputs, consumed by NewManager
	announceSink func(string)
	historyStore kv.Store
	tickInterval time.Duration
	eventBuffer  int
}

// NewManager creates a notification engine with the given options.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:         DefaultConfig(),
		presenter:   NoopPresenter{},
		logger:      slog.Default(),
		eventBuffer: 16,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.cfg.MaxNotifications < 1 {
		m.cfg.MaxNotifications = DefaultConfig().MaxNotifications
	}

	m.active = newActiveSet(m.cfg.MaxNotifications)

	schedOpts := []SchedulerOption{
		WithTickFunc(m.progressTick),
		WithSchedulerLogger(m.logger),
	}
	if m.tickInterval > 0 {
		schedOpts = append(schedOpts, WithTickInterval(m.tickInterval))
	}
	m.sched = NewTimerScheduler(m.expire, schedOpts...)

	m.announcer = NewAnnouncer(m.announceSink)
	m.events = broadcast.NewMemoryBroadcaster[Event](m.eventBuffer)
	if m.historyStore != nil {
		m.history = NewHistory(m.historyStore, WithHistoryLogger(m.logger))
	}

	return m
}

// Show creates a notification from the options and presents it. The record
// is inserted into the active set (evicting the oldest records if the
// capacity invariant requires it), its timers are armed, and the presenter,
// announcer, feedback and analytics hooks run best-effort. Returns the
// created record; nil after Close.
func (m *Manager) Show(opts ...Option) *Notification {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}

	cfg := m.cfg
	n := newNotification(cfg, opts...)
	if n.Invalid {
		m.logger.Warn("notification options rejected, defaults substituted",
			logger.NotificationID(n.ID),
			logger.Kind(n.Kind),
		)
	}

	evicted := m.active.insert(n)
	for _, old := range evicted {
		m.teardownLocked(old)
	}

	// An in-place replacement of an existing id must not inherit the old
	// record's deadline, so stale timers are cleared even when the new
	// record arms nothing.
	m.sched.Cancel(n.ID)

	autoClose := resolveFlag(n.Overrides.AutoClose, cfg.AutoClose)
	progress := resolveFlag(n.Overrides.Progress, cfg.Progress)
	if n.Duration > 0 {
		m.sched.Arm(n.ID, n.Duration, ArmOptions{
			AutoClose:     autoClose,
			Progress:      progress,
			ExtendOnPause: cfg.PauseExtendsDeadline,
		})
	}

	snapshot := *n
	m.mu.Unlock()

	for _, old := range evicted {
		m.afterDismiss(*old, ReasonEvicted, cfg)
	}

	if err := m.presenter.Render(snapshot); err != nil {
		m.logger.Error("failed to render notification",
			logger.NotificationID(snapshot.ID),
			logger.Error(err),
		)
	}

	if resolveFlag(snapshot.Overrides.Accessibility, cfg.Accessibility) {
		m.announcer.Announce(snapshot.Title, snapshot.Message)
	}

	m.playFeedback(snapshot, cfg)

	if m.analytics != nil && resolveFlag(snapshot.Overrides.Analytics, cfg.Analytics) {
		m.analytics.Track("notification_shown", map[string]any{
			"id":   snapshot.ID,
			"kind": string(snapshot.Kind),
		})
	}

	m.emit(Event{Type: EventShown, Notification: snapshot})

	return n
}

// Success shows a success notification with the given message.
func (m *Manager) Success(message string, opts ...Option) *Notification {
	return m.Show(append([]Option{WithKind(KindSuccess), WithMessage(message)}, opts...)...)
}

// Info shows an info notification with the given message.
func (m *Manager) Info(message string, opts ...Option) *Notification {
	return m.Show(append([]Option{WithKind(KindInfo), WithMessage(message)}, opts...)...)
}

// Warning shows a warning notification with the given message.
func (m *Manager) Warning(message string, opts ...Option) *Notification {
	return m.Show(append([]Option{WithKind(KindWarning), WithMessage(message)}, opts...)...)
}

// Error shows an error notification with the given message.
func (m *Manager) Error(message string, opts ...Option) *Notification {
	return m.Show(append([]Option{WithKind(KindError), WithMessage(message)}, opts...)...)
}

// Hide dismisses the notification with the given id. Unknown ids are logged
// and ignored; hiding twice is a no-op the second time.
func (m *Manager) Hide(id string) {
	m.dismiss(id, ReasonManual)
}

// HideAll dismisses every active notification through the normal teardown
// path, including archival.
func (m *Manager) HideAll() {
	m.mu.Lock()
	ids := make([]string, 0, m.active.len())
	for _, n := range m.active.all() {
		ids = append(ids, n.ID)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.dismiss(id, ReasonManual)
	}
}

// Clear removes every active notification immediately, without archival,
// and drops the persisted history.
func (m *Manager) Clear() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	cfg := m.cfg
	records := m.active.all()
	cleared := make([]Notification, 0, len(records))
	for _, n := range records {
		m.active.remove(n.ID)
		m.teardownLocked(n)
		cleared = append(cleared, *n)
	}
	m.mu.Unlock()

	for _, n := range cleared {
		m.afterDismiss(n, ReasonCleared, cfg)
	}

	if m.history != nil {
		if err := m.history.Clear(context.Background(), cfg.StorageKey); err != nil {
			m.logger.Error("failed to clear notification history",
				logger.StorageKey(cfg.StorageKey),
				logger.Error(err),
			)
		}
	}
}

// Update mutates an active notification in place. The id and creation time
// are preserved; the active-set size and order are unchanged. Changing the
// duration rearms the countdown from scratch. Unknown ids are logged and
// ignored.
func (m *Manager) Update(id string, opts ...Option) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	n := m.active.get(id)
	if n == nil {
		m.mu.Unlock()
		m.logger.Debug("update: unknown notification", logger.NotificationID(id))
		return
	}

	cfg := m.cfg
	r := request{n: *n}
	for _, opt := range opts {
		opt(&r)
	}
	r.n.ID = n.ID
	r.n.CreatedAt = n.CreatedAt
	r.n.UpdatedAt = time.Now()

	if r.durationSet && r.n.Duration != n.Duration {
		if r.n.Duration < 0 {
			m.logger.Warn("update: negative duration ignored", logger.NotificationID(id))
			r.n.Duration = n.Duration
		} else {
			m.sched.Cancel(id)
			if r.n.Duration > 0 {
				m.sched.Arm(id, r.n.Duration, ArmOptions{
					AutoClose:     resolveFlag(r.n.Overrides.AutoClose, cfg.AutoClose),
					Progress:      resolveFlag(r.n.Overrides.Progress, cfg.Progress),
					ExtendOnPause: cfg.PauseExtendsDeadline,
				})
			}
		}
	}

	*n = r.n
	snapshot := *n
	m.mu.Unlock()

	if err := m.presenter.Render(snapshot); err != nil {
		m.logger.Error("failed to re-render notification",
			logger.NotificationID(snapshot.ID),
			logger.Error(err),
		)
	}

	m.emit(Event{Type: EventUpdated, Notification: snapshot})
}

// Pause suspends the countdown of one notification (hover enter).
func (m *Manager) Pause(id string) {
	m.setPaused(id, true)
}

// Resume restarts the countdown of one notification (hover leave).
func (m *Manager) Resume(id string) {
	m.setPaused(id, false)
}

// PauseAll pauses every active notification at once, used when the host
// surface becomes hidden.
func (m *Manager) PauseAll() {
	m.forEachID(func(id string) { m.setPaused(id, true) })
}

// ResumeAll resumes every active notification at once.
func (m *Manager) ResumeAll() {
	m.forEachID(func(id string) { m.setPaused(id, false) })
}

// Get returns a copy of the active record with the given id.
func (m *Manager) Get(id string) (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.active.get(id)
	if n == nil {
		return Notification{}, false
	}
	return *n, true
}

// Active returns copies of the active records in insertion order.
func (m *Manager) Active() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.active.all()
	out := make([]Notification, 0, len(records))
	for _, n := range records {
		out = append(out, *n)
	}
	return out
}

// Len returns the current active-set size.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active.len()
}

// Progress returns the remaining countdown fraction for an active record.
func (m *Manager) Progress(id string) (float64, bool) {
	return m.sched.Progress(id)
}

// Announcement returns the text currently in the accessibility channel.
func (m *Manager) Announcement() string {
	return m.announcer.Current()
}

// Restore replays the persisted history into the active set. Restored
// records get duration zero so they do not auto-expire. A no-op unless
// persistence is enabled and a history store is configured.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	cfg := m.cfg
	m.mu.Unlock()

	if m.history == nil {
		return ErrNoHistory
	}
	if !cfg.Persistence {
		return nil
	}

	entries, err := m.history.LoadAll(ctx, cfg.StorageKey)
	if err != nil {
		m.logger.Error("failed to load notification history",
			logger.StorageKey(cfg.StorageKey),
			logger.Error(err),
		)
		return err
	}

	for _, e := range entries {
		m.Show(
			WithID(e.ID),
			WithKind(e.Kind),
			WithTitle(e.Title),
			WithMessage(e.Message),
			WithData(e.Data),
			WithDuration(0),
		)
	}

	return nil
}

// Events returns a subscription to engine lifecycle and config-change
// events. Cancelling ctx ends the subscription.
func (m *Manager) Events(ctx context.Context) broadcast.Subscriber[Event] {
	return m.events.Subscribe(ctx)
}

// Close shuts the engine down: all timers are cancelled, the event stream is
// closed, and subsequent calls become no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.sched.CancelAll()
	m.announcer.Stop()
	_ = m.events.Close()
}

// UpdateConfig applies a partial configuration change and emits a
// config-changed event. Lowering MaxNotifications evicts oldest records
// immediately so the capacity invariant holds at all times.
func (m *Manager) UpdateConfig(patch ConfigPatch) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	patch.apply(&m.cfg)
	cfg := m.cfg

	var evicted []*Notification
	if patch.MaxNotifications != nil {
		evicted = m.active.setCapacity(cfg.MaxNotifications)
		for _, old := range evicted {
			m.teardownLocked(old)
		}
	}
	m.mu.Unlock()

	for _, old := range evicted {
		m.afterDismiss(*old, ReasonEvicted, cfg)
	}

	m.emit(Event{Type: EventConfigChanged, Config: cfg})
}

// Config returns a snapshot of the current configuration.
func (m *Manager) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// SetPosition sets the stacking corner.
func (m *Manager) SetPosition(pos string) {
	m.UpdateConfig(ConfigPatch{Position: &pos})
}

// SetDuration sets the default display duration for new notifications.
func (m *Manager) SetDuration(d time.Duration) {
	m.UpdateConfig(ConfigPatch{Duration: &d})
}

// SetMaxNotifications sets the active-set capacity.
func (m *Manager) SetMaxNotifications(n int) {
	m.UpdateConfig(ConfigPatch{MaxNotifications: &n})
}

func (m *Manager) EnableAutoClose(enabled bool)    { m.UpdateConfig(ConfigPatch{AutoClose: &enabled}) }
func (m *Manager) EnableProgress(enabled bool)     { m.UpdateConfig(ConfigPatch{Progress: &enabled}) }
func (m *Manager) EnableClickToClose(enabled bool) { m.UpdateConfig(ConfigPatch{ClickToClose: &enabled}) }
func (m *Manager) EnableSwipeToClose(enabled bool) { m.UpdateConfig(ConfigPatch{SwipeToClose: &enabled}) }
func (m *Manager) EnableKeyboardNavigation(enabled bool) {
	m.UpdateConfig(ConfigPatch{KeyboardNavigation: &enabled})
}
func (m *Manager) EnableAccessibility(enabled bool) {
	m.UpdateConfig(ConfigPatch{Accessibility: &enabled})
}
func (m *Manager) EnableAnalytics(enabled bool)   { m.UpdateConfig(ConfigPatch{Analytics: &enabled}) }
func (m *Manager) EnablePersistence(enabled bool) { m.UpdateConfig(ConfigPatch{Persistence: &enabled}) }
func (m *Manager) EnableSound(enabled bool)       { m.UpdateConfig(ConfigPatch{Sound: &enabled}) }
func (m *Manager) EnableVibration(enabled bool)   { m.UpdateConfig(ConfigPatch{Vibration: &enabled}) }

// dismiss is the single teardown path shared by Hide, expiry and eviction:
// timers are cancelled before the record leaves the active set, then the
// post-removal side effects run outside the engine lock.
func (m *Manager) dismiss(id string, reason DismissReason) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	n := m.active.get(id)
	if n == nil {
		m.mu.Unlock()
		m.logger.Debug("hide: unknown notification", logger.NotificationID(id))
		return
	}

	m.sched.Cancel(id)
	m.active.remove(id)
	n.Dismissed = true
	n.UpdatedAt = time.Now()
	cfg := m.cfg
	snapshot := *n
	m.mu.Unlock()

	m.afterDismiss(snapshot, reason, cfg)
}

// teardownLocked cancels timers and marks a record dismissed. The record
// must already be out of the active set. Caller holds m.mu.
func (m *Manager) teardownLocked(n *Notification) {
	m.sched.Cancel(n.ID)
	n.Dismissed = true
	n.UpdatedAt = time.Now()
}

// afterDismiss runs the side effects of a dismissal: presentation removal,
// archival, analytics and the dismissed event. Runs without the engine lock.
func (m *Manager) afterDismiss(n Notification, reason DismissReason, cfg Config) {
	if err := m.presenter.Remove(n.ID); err != nil {
		m.logger.Error("failed to remove notification from surface",
			logger.NotificationID(n.ID),
			logger.Error(err),
		)
	}

	if m.history != nil && reason != ReasonCleared &&
		resolveFlag(n.Overrides.Persistence, cfg.Persistence) {
		err := m.history.Append(context.Background(), cfg.StorageKey, summaryOf(n), cfg.MaxStoredNotifications)
		if err != nil {
			// Storage faults stay local: the in-memory state is already
			// consistent and the caller is never interrupted.
			m.logger.Error("failed to archive notification",
				logger.NotificationID(n.ID),
				logger.StorageKey(cfg.StorageKey),
				logger.Error(err),
			)
		}
	}

	if m.analytics != nil && resolveFlag(n.Overrides.Analytics, cfg.Analytics) {
		m.analytics.Track("notification_dismissed", map[string]any{
			"id":     n.ID,
			"kind":   string(n.Kind),
			"reason": string(reason),
		})
	}

	m.emit(Event{Type: EventDismissed, Notification: n, Reason: reason})
}

func (m *Manager) setPaused(id string, paused bool) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	n := m.active.get(id)
	if n == nil {
		m.mu.Unlock()
		return
	}
	n.Paused = paused
	if paused {
		m.sched.Pause(id)
	} else {
		m.sched.Resume(id)
	}
	m.mu.Unlock()
}

func (m *Manager) forEachID(fn func(id string)) {
	m.mu.Lock()
	ids := make([]string, 0, m.active.len())
	for _, n := range m.active.all() {
		ids = append(ids, n.ID)
	}
	m.mu.Unlock()

	for _, id := range ids {
		fn(id)
	}
}

// expire is the scheduler's deadline callback.
func (m *Manager) expire(id string) {
	m.dismiss(id, ReasonExpired)
}

// progressTick forwards countdown ticks to presenters that care.
func (m *Manager) progressTick(id string, remaining float64) {
	if pu, ok := m.presenter.(ProgressUpdater); ok {
		pu.UpdateProgress(id, remaining)
	}
}

func (m *Manager) playFeedback(n Notification, cfg Config) {
	if m.feedback == nil {
		return
	}

	if resolveFlag(n.Overrides.Sound, cfg.Sound) {
		if err := m.feedback.PlaySound(cfg.SoundFile); err != nil {
			m.logger.Debug("sound playback failed",
				logger.NotificationID(n.ID),
				logger.Error(err),
			)
		}
	}
	if resolveFlag(n.Overrides.Vibration, cfg.Vibration) {
		if err := m.feedback.Vibrate(cfg.VibrationPattern); err != nil {
			m.logger.Debug("vibration failed",
				logger.NotificationID(n.ID),
				logger.Error(err),
			)
		}
	}
}

func (m *Manager) emit(e Event) {
	_ = m.events.Broadcast(context.Background(), broadcast.Message[Event]{Data: e})
}
