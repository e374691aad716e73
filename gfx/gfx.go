package gfx

// Texture is a backend-resident image. Plane textures created with
// NewTexture are single-channel, 8-bit unsigned; a target's color
// texture is RGBA.
type Texture interface {
	Width() int
	Height() int

	// Upload replaces the texture's full extent with the given pixel
	// data. No filtering or mipmap generation is performed.
	Upload(pixels []byte) error
}

// Target is an offscreen render destination.
type Target interface {
	Width() int
	Height() int

	// ColorTexture returns the target's color attachment. Its content
	// is the result of the most recent Draw into the target.
	ColorTexture() Texture
}

// Program is a compiled color-conversion pass. It is an opaque handle;
// its behavior is fixed by the ProgramSpec it was compiled from.
type Program interface {
	// Valid reports whether the program is usable for drawing.
	Valid() bool
}

// Uniforms carries the tone parameters handed to the program on every
// draw. Neutral values are brightness 0, contrast 1, gamma (1,1,1).
type Uniforms struct {
	Brightness float64
	Contrast   float64
	Gamma      [3]float64
}

// NeutralUniforms returns the identity tone parameters.
func NeutralUniforms() Uniforms {
	return Uniforms{Contrast: 1, Gamma: [3]float64{1, 1, 1}}
}

// FragmentFunc is the software-evaluable form of a fragment program.
// Inputs are the sampled plane values normalized to [0,1]; outputs are
// unclamped linear RGB.
type FragmentFunc func(y, u, v float64, uniforms Uniforms) (r, g, b float64)

// ProgramSpec describes a color-conversion pass in both forms a
// backend may need: shading-language source for hardware backends and
// an equivalent Go fragment function for the software backend.
type ProgramSpec struct {
	VertexSource   string
	FragmentSource string
	Fragment       FragmentFunc
}

// TexCoord is a normalized texture coordinate.
type TexCoord struct {
	S float64
	T float64
}

// DrawOp describes one full-screen quad draw: three plane textures
// composited through a program into a target. The texture-coordinate
// rectangle selects the visible region of the (possibly stride-padded)
// planes; T runs bottom-up, so an upper-left T of 1 samples the first
// stored plane row at the top of the target.
type DrawOp struct {
	Target  Target
	Program Program

	// Plane textures bound to the three fixed sampling units:
	// luma, chroma-blue, chroma-red.
	Y Texture
	U Texture
	V Texture

	UpperLeft  TexCoord
	LowerRight TexCoord

	Uniforms Uniforms
}

// Backend is the graphics collaborator consumed by the rendering
// pipeline.
type Backend interface {
	// NewTexture creates a single-channel texture of the given size.
	NewTexture(width, height int) (Texture, error)

	// NewTarget creates an offscreen target with an RGBA color
	// attachment of the given size.
	NewTarget(width, height int) (Target, error)

	// CompileProgram builds the color-conversion pass. A failure here
	// puts the caller in degraded mode: rendering is skipped but
	// playback continues.
	CompileProgram(spec ProgramSpec) (Program, error)

	// Draw executes the full-screen quad pass described by op.
	Draw(op DrawOp) error
}
