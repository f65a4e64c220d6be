package toast

import (
	"time"
)

// Kind represents the notification kind/severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindDefault Kind = "default"
)

// Action represents a call-to-action button attached to a notification.
// Handler is invoked by the presentation layer when the action is activated.
type Action struct {
	ID      string             `json:"id"`
	Label   string             `json:"label"`
	Primary bool               `json:"primary"`
	Handler func(Notification) `json:"-"`
}

// Overrides carries per-notification feature flags. A nil field means
// "follow the current global configuration"; a non-nil field pins the flag
// for this record regardless of later configuration changes.
type Overrides struct {
	AutoClose     *bool
	ClickToClose  *bool
	SwipeToClose  *bool
	Progress      *bool
	Accessibility *bool
	Analytics     *bool
	Persistence   *bool
	Sound         *bool
	Vibration     *bool
}

// Notification is the core record managed by the engine. Records are
// immutable by convention once shown; all mutation goes through the Manager.
type Notification struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon,omitempty"`

	// Duration is how long the record stays up before auto-close.
	// Zero means the record never auto-closes. Frozen at creation so a
	// running countdown is not disturbed by configuration changes.
	Duration time.Duration `json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Actions []Action       `json:"actions,omitempty"`
	Data    map[string]any `json:"data,omitempty"`

	Overrides Overrides `json:"-"`

	// Paused is set while the auto-close countdown is suspended (hover,
	// hidden surface). Dismissed is set once the record has left the active
	// set. Invalid marks a record whose options were rejected and replaced
	// with safe defaults by the factory.
	Paused    bool `json:"-"`
	Dismissed bool `json:"-"`
	Invalid   bool `json:"-"`
}

// Summary is the reduced projection of a dismissed notification kept in the
// durable history.
type Summary struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"created_at"`
	Data      map[string]any `json:"data,omitempty"`
}

func summaryOf(n Notification) Summary {
	return Summary{
		ID:        n.ID,
		Kind:      n.Kind,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Data:      n.Data,
	}
}

// resolveFlag applies a per-record override on top of the global default.
func resolveFlag(override *bool, def bool) bool {
	if override != nil {
		return *override
	}
	return def
}
