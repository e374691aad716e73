package moviegl

import "errors"

// Sentinel errors for player construction.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrNilDecoder indicates construction without a decoder.
	ErrNilDecoder = errors.New("decoder is nil")

	// ErrDecoderNotInitialized indicates the decoder failed to open
	// its input. The player cannot be constructed over it.
	ErrDecoderNotInitialized = errors.New("decoder failed to initialize")
)
