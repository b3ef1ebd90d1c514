package history

import "errors"

// Sentinel errors for history operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, history.ErrNotConnected) {
//	    // Handle disconnected state
//	}
var (
	// ErrNotConnected indicates the client is not connected to InfluxDB.
	ErrNotConnected = errors.New("history: not connected")

	// ErrConnectionFailed indicates the initial connection attempt failed.
	ErrConnectionFailed = errors.New("history: connection failed")

	// ErrWriteFailed indicates a write operation failed.
	// Note: Most write errors are handled asynchronously via the error callback.
	ErrWriteFailed = errors.New("history: write failed")

	// ErrDisabled indicates intent history is disabled in config.
	ErrDisabled = errors.New("history: disabled in configuration")
)
