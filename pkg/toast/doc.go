// Package toast implements the transient-notification engine: it accepts an
// unbounded stream of "show this message" requests from unrelated callers
// and presents them under strict resource bounds, with per-record timed
// expiry, pause/resume, accessibility announcement and an optional durable
// dismissal history.
//
// # Architecture
//
// The engine is a set of small collaborators orchestrated by Manager:
//
//   - factory: resolves loosely-specified requests into full records
//   - activeSet: the bounded, insertion-ordered set of visible records,
//     enforcing oldest-first eviction
//   - TimerScheduler: per-record auto-close deadline and progress ticker
//   - Announcer: single-slot assistive-technology announcement channel
//   - History: bounded ring of dismissed summaries in a kv.Store
//   - Presenter: the external rendering surface (interface only)
//
// Every dismissal path (explicit hide, deadline expiry, capacity eviction)
// runs the same teardown: timers are cancelled before the record leaves the
// active set, then presentation removal, archival and events follow.
//
// # Basic Usage
//
//	m := toast.NewManager(
//	    toast.WithPresenter(webPresenter),
//	    toast.WithHistoryStore(kv.NewMemory()),
//	)
//	defer m.Close()
//
//	m.Success("Document saved")
//	m.Error("Export failed", toast.WithDuration(0)) // stays until dismissed
//
//	n := m.Show(
//	    toast.WithTitle("Sync complete"),
//	    toast.WithMessage("42 records updated"),
//	    toast.WithKind(toast.KindInfo),
//	)
//	m.Hide(n.ID)
//
// # Error Policy
//
// No public method panics or returns an error for unknown ids, invalid
// options or storage faults. The engine absorbs and logs every failure so a
// caller's business flow is never interrupted by its notification; the only
// user-visible failure mode is a notification that does not appear.
//
// # Configuration
//
// Config holds the process-wide defaults. It is mutated exclusively through
// UpdateConfig (the Set*/Enable* methods are thin wrappers over it), and
// every change is published to Events subscribers. Active records read the
// current configuration at use time unless they carry a per-record
// override; only the duration is frozen at creation so running countdowns
// stay stable.
package toast
