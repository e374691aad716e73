package gfx

import "errors"

// Sentinel errors for backend operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrInvalidSize indicates a texture or target with non-positive
	// dimensions.
	ErrInvalidSize = errors.New("invalid texture size")

	// ErrUploadSize indicates pixel data that does not cover the
	// texture's full extent.
	ErrUploadSize = errors.New("pixel data does not match texture extent")

	// ErrProgramSource indicates an incomplete program specification.
	ErrProgramSource = errors.New("incomplete program specification")

	// ErrForeignObject indicates a texture, target, or program that
	// was not created by this backend.
	ErrForeignObject = errors.New("object belongs to a different backend")

	// ErrIncompleteDraw indicates a draw operation missing a target,
	// program, or plane texture.
	ErrIncompleteDraw = errors.New("draw operation incomplete")
)
