// Package gfx defines the graphics backend consumed by the rendering
// pipeline, together with a pure Go software implementation.
//
// The playback core needs four capabilities from a backend: creating
// single-channel textures sized to plane strides, creating offscreen
// render targets, compiling the color-conversion program, and drawing
// a textured full-screen quad into a target. Backend is that contract;
// a GPU-backed implementation supplies the same surface on top of a
// real graphics API.
//
// SoftwareBackend implements the contract on byte slices. Its Draw
// evaluates the program's fragment function per output pixel, which
// makes the whole color-conversion pass executable and assertable in
// ordinary tests with no GPU or cgo involved.
package gfx
