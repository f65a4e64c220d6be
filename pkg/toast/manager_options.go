package toast

import (
	"log/slog"
	"time"

	"github.com/complykit/toastkit/pkg/kv"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) ManagerOption {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithPresenter sets the presentation adapter. Defaults to NoopPresenter.
func WithPresenter(p Presenter) ManagerOption {
	return func(m *Manager) {
		if p != nil {
			m.presenter = p
		}
	}
}

// WithHistoryStore enables the durable dismissal history on top of store.
func WithHistoryStore(store kv.Store) ManagerOption {
	return func(m *Manager) {
		m.historyStore = store
	}
}

// WithFeedback sets the best-effort sound/vibration provider.
func WithFeedback(f Feedback) ManagerOption {
	return func(m *Manager) {
		m.feedback = f
	}
}

// WithAnalyticsRecorder sets the analytics recorder.
func WithAnalyticsRecorder(r Recorder) ManagerOption {
	return func(m *Manager) {
		m.analytics = r
	}
}

// WithLogger sets the logger for the Manager and its components.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithAnnouncementSink routes accessibility announcements to fn, typically
// the presentation layer's live region.
func WithAnnouncementSink(fn func(text string)) ManagerOption {
	return func(m *Manager) {
		m.announceSink = fn
	}
}

// WithProgressTickInterval overrides the progress tick interval, mainly to
// speed tests up.
func WithProgressTickInterval(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.tickInterval = d
	}
}

// WithEventBufferSize sets the per-subscriber event channel buffer.
func WithEventBufferSize(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.eventBuffer = n
		}
	}
}
