package gfx

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SoftwareBackend implements Backend on plain byte slices. It exists
// so the full rendering pass runs headless: in tests, and in players
// that hand the output pixels to something other than a GPU.
type SoftwareBackend struct{}

// NewSoftwareBackend creates a software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// SoftwareTexture is a byte-slice texture. Plane textures have one
// channel; target color textures have four (RGBA).
type SoftwareTexture struct {
	width    int
	height   int
	channels int
	pix      []byte
}

// Width returns the texture width in pixels.
func (t *SoftwareTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *SoftwareTexture) Height() int { return t.height }

// Channels returns the number of channels per pixel.
func (t *SoftwareTexture) Channels() int { return t.channels }

// Upload replaces the texture's full extent.
func (t *SoftwareTexture) Upload(pixels []byte) error {
	need := t.width * t.height * t.channels
	if len(pixels) != need {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrUploadSize, len(pixels), need)
	}
	copy(t.pix, pixels)
	return nil
}

// Pixels returns the backing pixel storage. Callers must not resize it.
func (t *SoftwareTexture) Pixels() []byte { return t.pix }

// At returns the first channel of the pixel at (x, y).
func (t *SoftwareTexture) At(x, y int) byte {
	return t.pix[(y*t.width+x)*t.channels]
}

// RGBAAt returns the four channels of the pixel at (x, y). Only valid
// on a target's color texture.
func (t *SoftwareTexture) RGBAAt(x, y int) (r, g, b, a byte) {
	i := (y*t.width + x) * 4
	return t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3]
}

type softwareTarget struct {
	width  int
	height int
	color  *SoftwareTexture
}

func (t *softwareTarget) Width() int            { return t.width }
func (t *softwareTarget) Height() int           { return t.height }
func (t *softwareTarget) ColorTexture() Texture { return t.color }

type softwareProgram struct {
	frag FragmentFunc
}

// Valid reports whether the program can be drawn with.
func (p *softwareProgram) Valid() bool { return p != nil && p.frag != nil }

// NewTexture creates a single-channel texture.
func (b *SoftwareBackend) NewTexture(width, height int) (Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &SoftwareTexture{
		width:    width,
		height:   height,
		channels: 1,
		pix:      make([]byte, width*height),
	}, nil
}

// NewTarget creates an offscreen target with an RGBA color texture.
func (b *SoftwareBackend) NewTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &softwareTarget{
		width:  width,
		height: height,
		color: &SoftwareTexture{
			width:    width,
			height:   height,
			channels: 4,
			pix:      make([]byte, width*height*4),
		},
	}, nil
}

// CompileProgram validates the spec and returns a program that
// evaluates its Go fragment function. The shading-language sources are
// required even though the software path does not execute them: a spec
// missing them could not run on a hardware backend, and catching that
// here keeps backends interchangeable.
func (b *SoftwareBackend) CompileProgram(spec ProgramSpec) (Program, error) {
	if spec.VertexSource == "" || spec.FragmentSource == "" || spec.Fragment == nil {
		logrus.WithFields(logrus.Fields{
			"function":     "SoftwareBackend.CompileProgram",
			"has_vertex":   spec.VertexSource != "",
			"has_fragment": spec.FragmentSource != "",
			"has_eval":     spec.Fragment != nil,
		}).Error("Program specification incomplete")
		return nil, ErrProgramSource
	}
	return &softwareProgram{frag: spec.Fragment}, nil
}

// Draw rasterizes the full-screen quad: every target pixel samples the
// three planes at its interpolated texture coordinate and runs the
// fragment function. Sampling is nearest-neighbor; T=1 addresses the
// first stored plane row (bottom-up convention).
func (b *SoftwareBackend) Draw(op DrawOp) error {
	if op.Target == nil || op.Program == nil || op.Y == nil || op.U == nil || op.V == nil {
		return ErrIncompleteDraw
	}

	target, ok := op.Target.(*softwareTarget)
	if !ok {
		return fmt.Errorf("%w: target", ErrForeignObject)
	}
	program, ok := op.Program.(*softwareProgram)
	if !ok {
		return fmt.Errorf("%w: program", ErrForeignObject)
	}
	if !program.Valid() {
		return ErrIncompleteDraw
	}

	yTex, ok := op.Y.(*SoftwareTexture)
	if !ok {
		return fmt.Errorf("%w: luma texture", ErrForeignObject)
	}
	uTex, ok := op.U.(*SoftwareTexture)
	if !ok {
		return fmt.Errorf("%w: chroma-blue texture", ErrForeignObject)
	}
	vTex, ok := op.V.(*SoftwareTexture)
	if !ok {
		return fmt.Errorf("%w: chroma-red texture", ErrForeignObject)
	}

	w, h := target.width, target.height
	out := target.color.pix
	for py := 0; py < h; py++ {
		fy := (float64(py) + 0.5) / float64(h)
		t := op.UpperLeft.T + (op.LowerRight.T-op.UpperLeft.T)*fy
		for px := 0; px < w; px++ {
			fx := (float64(px) + 0.5) / float64(w)
			s := op.UpperLeft.S + (op.LowerRight.S-op.UpperLeft.S)*fx

			y := sampleNearest(yTex, s, t)
			u := sampleNearest(uTex, s, t)
			v := sampleNearest(vTex, s, t)

			r, g, bl := program.frag(y, u, v, op.Uniforms)

			i := (py*w + px) * 4
			out[i] = clampByte(r)
			out[i+1] = clampByte(g)
			out[i+2] = clampByte(bl)
			out[i+3] = 0xff
		}
	}
	return nil
}

// sampleNearest reads the texel addressed by (s, t), normalized to
// [0,1]. T is bottom-up: t=1 is the first stored row.
func sampleNearest(tex *SoftwareTexture, s, t float64) float64 {
	x := int(s * float64(tex.width))
	if x < 0 {
		x = 0
	} else if x >= tex.width {
		x = tex.width - 1
	}
	y := int((1 - t) * float64(tex.height))
	if y < 0 {
		y = 0
	} else if y >= tex.height {
		y = tex.height - 1
	}
	return float64(tex.pix[(y*tex.width+x)*tex.channels]) / 255.0
}

func clampByte(v float64) byte {
	s := v*255.0 + 0.5
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return byte(s)
}
