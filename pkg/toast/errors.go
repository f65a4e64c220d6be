package toast

import "errors"

var (
	// ErrManagerClosed is returned by Restore after Close.
	ErrManagerClosed = errors.New("toast: manager is closed")

	// ErrNoHistory is returned by Restore when no history store is configured.
	ErrNoHistory = errors.New("toast: no history store configured")
)
