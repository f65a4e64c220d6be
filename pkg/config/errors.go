package config

import "errors"

var (
	// ErrNilPointer is returned when a nil destination is passed to a loader.
	ErrNilPointer = errors.New("config: destination must be a non-nil pointer")

	// ErrParsingConfig is returned when environment parsing fails.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrReadingFile is returned when a configuration file cannot be read.
	ErrReadingFile = errors.New("config: failed to read configuration file")

	// ErrParsingFile is returned when a configuration file cannot be decoded.
	ErrParsingFile = errors.New("config: failed to parse configuration file")
)
