package frame

// Geometry captures the dimensions and line strides of a video frame.
//
// The rendering pipeline compares geometries structurally to decide
// when GPU plane textures must be reallocated, instead of comparing
// raw width/height integers inline.
type Geometry struct {
	Width   int
	Height  int
	YStride int
	UStride int
	VStride int
}

// GeometryOf returns the geometry of the given frame.
func GeometryOf(f *VideoFrame) Geometry {
	return Geometry{
		Width:   f.Width,
		Height:  f.Height,
		YStride: f.YStride,
		UStride: f.UStride,
		VStride: f.VStride,
	}
}

// Equal reports whether both geometries match in every field,
// strides included.
func (g Geometry) Equal(o Geometry) bool {
	return g == o
}

// SizeChanged reports whether the visible width or height differs.
//
// Note that a stride-only change does not count as a size change, so
// plane textures are not reallocated for it. This matches the historic
// resize trigger; see DESIGN.md for why it is kept as-is.
func (g Geometry) SizeChanged(o Geometry) bool {
	return g.Width != o.Width || g.Height != o.Height
}

// ChromaHeight returns the height of the half-resolution chroma planes.
func (g Geometry) ChromaHeight() int {
	return g.Height / 2
}
