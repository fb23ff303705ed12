package processor

import "errors"

// Sentinel errors for the processor package. As in package program, only
// these package-level sentinels are exposed; callers use errors.Is.
var (
	// ErrZeroWidth indicates dispatch, execute, or retire width was zero
	// or negative (spec §7 ConfigurationError).
	ErrZeroWidth = errors.New("processor: stage width must be positive")

	// ErrNoPorts indicates the port table is empty; GetResource's
	// fallback requires at least one declared port (spec §7
	// ConfigurationError).
	ErrNoPorts = errors.New("processor: port table must be non-empty")

	// ErrMalformedSource indicates the JSON source could not be
	// decoded (spec §7 MalformedSource).
	ErrMalformedSource = errors.New("processor: malformed source")
)
