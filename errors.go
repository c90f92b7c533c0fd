package sha256

import "errors"

var (
	// ErrUnknownBackend is returned when a backend name is not one of the
	// names reported by Backends.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrNativeUnavailable is returned when the accelerated backend is
	// requested but its assembly routine cannot run on this machine. It is
	// never handled by falling back to the portable backend.
	ErrNativeUnavailable = errors.New("accelerated backend unavailable")
)
