// Package logger provides a thin factory around Go's slog package plus a set
// of attribute constructors shared across the toastkit packages.
//
// The factory, New, builds a *slog.Logger from functional options: output
// format (text or json), minimum level, writer, and static attributes applied
// to every record. The helpers in attr.go (Error, NotificationID, Kind, ...)
// keep attribute naming consistent so notification events can be correlated
// in log aggregation systems.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "toast")),
//	)
//	log.Info("notification shown", logger.NotificationID(n.ID), logger.Kind(n.Kind))
package logger
