package toast

// Presenter renders notifications to a visual surface. Implementations live
// outside the engine (web layer, TUI, tests); the engine only ever calls
// Render and Remove and logs their errors without surfacing them to callers.
//
// The presentation layer is expected to report user interaction back into
// the engine: close affordances call Manager.Hide, action activation runs
// the Action handler, hover enter/leave call Manager.Pause and
// Manager.Resume. Whether click, swipe, and keyboard interactions are wired
// up at all is governed by the effective configuration flags of each record.
type Presenter interface {
	// Render shows a record, or re-renders it after an update.
	Render(n Notification) error

	// Remove takes a dismissed record off the surface.
	Remove(id string) error
}

// ProgressUpdater is an optional Presenter extension receiving the remaining
// countdown fraction (100 down to 0) on every progress tick.
type ProgressUpdater interface {
	UpdateProgress(id string, remaining float64)
}

// Feedback plays best-effort sensory cues for new notifications. Errors are
// swallowed by the engine: an unsupported sound backend must never break a
// business-logic flow that happened to show a toast.
type Feedback interface {
	PlaySound(file string) error
	Vibrate(pattern []int) error
}

// Recorder receives analytics events for notification creation and
// dismissal when analytics is enabled.
type Recorder interface {
	Track(event string, props map[string]any)
}

// NoopPresenter renders nothing. It is the default presenter so the engine
// can run headless (tests, background workers).
type NoopPresenter struct{}

func (NoopPresenter) Render(n Notification) error { return nil }
func (NoopPresenter) Remove(id string) error      { return nil }
