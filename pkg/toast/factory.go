package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newNotification builds a fully-populated record from caller options and
// the configuration snapshot. Pure construction: no timers are armed, no
// storage or presentation is touched here.
func newNotification(cfg Config, opts ...Option) *Notification {
	now := time.Now()
	r := request{n: Notification{
		Kind:      KindDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	for _, opt := range opts {
		opt(&r)
	}

	n := r.n

	if n.ID == "" {
		n.ID = newID()
	}
	if !r.durationSet {
		n.Duration = cfg.Duration
	}
	if n.Duration < 0 {
		// Rejected option: fall back to the configured default and flag the
		// record so callers and logs can tell.
		n.Duration = cfg.Duration
		n.Invalid = true
	}
	if n.Message == "" && n.Title == "" {
		n.Message = defaultMessage(n.Kind)
		n.Invalid = true
	}
	if n.Icon == "" {
		n.Icon = defaultIcon(n.Kind)
	}

	return &n
}

// newID generates a record id from a millisecond timestamp and a 12-char
// random suffix, unique for all practical purposes across active and
// historical records.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("toast-%d-%s", time.Now().UnixMilli(), suffix)
}

func defaultIcon(kind Kind) string {
	switch kind {
	case KindSuccess:
		return "check-circle"
	case KindInfo:
		return "info-circle"
	case KindWarning:
		return "alert-triangle"
	case KindError:
		return "x-circle"
	default:
		return "bell"
	}
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindSuccess:
		return "Operation completed"
	case KindWarning:
		return "Attention required"
	case KindError:
		return "Something went wrong"
	default:
		return "Notification"
	}
}
