package toast

// EventType identifies an engine lifecycle event.
type EventType string

const (
	// EventShown is emitted after a notification enters the active set.
	EventShown EventType = "shown"
	// EventUpdated is emitted after an in-place update of an active record.
	EventUpdated EventType = "updated"
	// EventDismissed is emitted after a notification leaves the active set.
	EventDismissed EventType = "dismissed"
	// EventConfigChanged is emitted after UpdateConfig or any setter.
	EventConfigChanged EventType = "config_changed"
)

// DismissReason records which path removed a notification.
type DismissReason string

const (
	// ReasonManual is an explicit Hide call (user close, caller hide).
	ReasonManual DismissReason = "manual"
	// ReasonExpired is the auto-close deadline firing.
	ReasonExpired DismissReason = "expired"
	// ReasonEvicted is capacity enforcement removing the oldest record.
	ReasonEvicted DismissReason = "evicted"
	// ReasonCleared is Clear wiping the active set without archival.
	ReasonCleared DismissReason = "cleared"
)

// Event is what Manager.Events subscribers receive. Notification is a copy
// taken at emission time; Config is populated for EventConfigChanged.
type Event struct {
	Type         EventType
	Notification Notification
	Reason       DismissReason
	Config       Config
}
