package audio

import "errors"

// Sentinel errors for audio path operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrQueueFull indicates a frame was queued while the path reported
	// no buffer space.
	ErrQueueFull = errors.New("audio queue full")

	// ErrNilFrame indicates a nil frame was handed to the path.
	ErrNilFrame = errors.New("nil audio frame")

	// ErrOpusDecode indicates an Opus packet could not be decoded.
	ErrOpusDecode = errors.New("opus decode failed")
)
