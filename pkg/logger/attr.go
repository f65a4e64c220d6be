package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NotificationID records the notification identifier under the key
// "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Kind records the notification kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Component records the engine component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// StorageKey records the durable storage key under the key "storage_key".
func StorageKey(key string) slog.Attr {
	return slog.String("storage_key", key)
}

// Count records a generic count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Reason records a dismissal reason under the key "reason".
func Reason(reason any) slog.Attr {
	return slog.Any("reason", reason)
}
