// Package render turns decoded YUV420 frames into a displayable color
// texture.
//
// PlaneCache owns the three single-channel plane textures (luma,
// chroma-blue, chroma-red) sized to the incoming frame's line strides,
// plus the offscreen target sized to the visible frame. All four are
// reallocated together when the frame's width or height changes, and
// never piecemeal.
//
// Compositor binds the planes and executes the BT.601-style color
// conversion pass into the target, cropping stride padding via the
// texture-coordinate rectangle. The conversion exposes three tone
// parameters (brightness, contrast, per-channel gamma) that default to
// neutral values.
package render
