package frame

import "errors"

// Sentinel errors for frame validation.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrInvalidDimensions indicates a frame with non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrStrideTooSmall indicates a plane stride smaller than the visible width.
	ErrStrideTooSmall = errors.New("plane stride smaller than visible width")

	// ErrPlaneTooSmall indicates a plane buffer shorter than stride times height.
	ErrPlaneTooSmall = errors.New("plane buffer too small")
)
