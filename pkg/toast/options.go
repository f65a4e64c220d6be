package toast

import "time"

// request accumulates caller options before the factory resolves defaults.
// durationSet distinguishes an explicit WithDuration(0) from an absent one:
// the former pins the record open forever, the latter takes the configured
// default.
type request struct {
	n           Notification
	durationSet bool
}

// Option customises a notification passed to Show, the kind helpers, or
// Update.
type Option func(*request)

// WithID sets an explicit record id. When absent, the factory generates one.
func WithID(id string) Option {
	return func(r *request) { r.n.ID = id }
}

// WithKind sets the notification kind.
func WithKind(kind Kind) Option {
	return func(r *request) { r.n.Kind = kind }
}

// WithTitle sets the display title.
func WithTitle(title string) Option {
	return func(r *request) { r.n.Title = title }
}

// WithMessage sets the display message.
func WithMessage(message string) Option {
	return func(r *request) { r.n.Message = message }
}

// WithIcon sets the display icon, overriding the kind default.
func WithIcon(icon string) Option {
	return func(r *request) { r.n.Icon = icon }
}

// WithDuration sets how long the notification stays up. An explicit zero
// means the record never auto-closes.
func WithDuration(d time.Duration) Option {
	return func(r *request) {
		r.n.Duration = d
		r.durationSet = true
	}
}

// WithAction appends a call-to-action button.
func WithAction(a Action) Option {
	return func(r *request) { r.n.Actions = append(r.n.Actions, a) }
}

// WithData attaches a caller-supplied payload carried through to events and
// the dismissal history.
func WithData(data map[string]any) Option {
	return func(r *request) { r.n.Data = data }
}

// WithDataValue sets a single payload entry.
func WithDataValue(key string, value any) Option {
	return func(r *request) {
		if r.n.Data == nil {
			r.n.Data = make(map[string]any)
		}
		r.n.Data[key] = value
	}
}

// WithAutoClose overrides the global auto-close flag for this record.
func WithAutoClose(enabled bool) Option {
	return func(r *request) { r.n.Overrides.AutoClose = &enabled }
}

// WithClickToClose overrides the global click-to-close flag for this record.
func WithClickToClose(enabled bool) Option {
	return func(r *request) { r.n.Overrides.ClickToClose = &enabled }
}

// WithSwipeToClose overrides the global swipe-to-close flag for this record.
func WithSwipeToClose(enabled bool) Option {
	return func(r *request) { r.n.Overrides.SwipeToClose = &enabled }
}

// WithProgress overrides the global progress-indicator flag for this record.
func WithProgress(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Progress = &enabled }
}

// WithAccessibility overrides the global accessibility-announcement flag for
// this record.
func WithAccessibility(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Accessibility = &enabled }
}

// WithAnalytics overrides the global analytics flag for this record.
func WithAnalytics(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Analytics = &enabled }
}

// WithPersistence overrides the global persistence flag for this record.
func WithPersistence(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Persistence = &enabled }
}

// WithSound overrides the global sound flag for this record.
func WithSound(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Sound = &enabled }
}

// WithVibration overrides the global vibration flag for this record.
func WithVibration(enabled bool) Option {
	return func(r *request) { r.n.Overrides.Vibration = &enabled }
}
