package render

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/gfx"
)

// Compositor executes the color-conversion pass: it binds the cached
// plane textures and draws a full-screen quad into the cache's
// offscreen target, whose color attachment becomes the tick's output
// texture.
type Compositor struct {
	backend gfx.Backend
	program gfx.Program

	brightness float64
	contrast   float64
	gamma      [3]float64
}

// NewCompositor creates a compositor and compiles the conversion
// program on the given backend. If compilation fails the compositor is
// created in degraded mode: the failure is reported diagnostically,
// Render produces no texture, and playback is otherwise unaffected.
func NewCompositor(backend gfx.Backend) *Compositor {
	c := &Compositor{
		backend:  backend,
		contrast: 1,
		gamma:    [3]float64{1, 1, 1},
	}

	program, err := backend.CompileProgram(gfx.ProgramSpec{
		VertexSource:   VertexProgramSource,
		FragmentSource: FragmentProgramSource,
		Fragment:       fragment,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewCompositor",
			"error":    err.Error(),
		}).Error("Color conversion program unavailable, rendering disabled")
		return c
	}

	c.program = program
	return c
}

// Degraded reports whether the compositor lacks a usable program.
func (c *Compositor) Degraded() bool {
	return c.program == nil || !c.program.Valid()
}

// SetBrightness sets the additive luma offset. Zero is neutral.
func (c *Compositor) SetBrightness(brightness float64) {
	c.brightness = brightness
}

// SetContrast sets the multiplicative RGB scale. One is neutral.
func (c *Compositor) SetContrast(contrast float64) {
	c.contrast = contrast
}

// SetGamma sets the per-channel power. (1, 1, 1) is neutral.
func (c *Compositor) SetGamma(r, g, b float64) {
	c.gamma = [3]float64{r, g, b}
}

// Uniforms returns the current tone parameters.
func (c *Compositor) Uniforms() gfx.Uniforms {
	return gfx.Uniforms{
		Brightness: c.brightness,
		Contrast:   c.contrast,
		Gamma:      c.gamma,
	}
}

// Render draws the cache's planes into its offscreen target and
// returns the target's color texture. The texture-coordinate
// rectangle maps only the visible fraction of the stride-padded luma
// width, with the bottom-up vertical convention. Returns nil in
// degraded mode or when the draw fails.
func (c *Compositor) Render(cache *PlaneCache) gfx.Texture {
	if c.Degraded() {
		return nil
	}

	target := cache.Target()
	y, u, v := cache.Planes()
	if target == nil || y == nil {
		return nil
	}

	// Right edge crops the Y/U/V stride padding.
	visible := float64(cache.Geometry().Width) / float64(y.Width())

	op := gfx.DrawOp{
		Target:     target,
		Program:    c.program,
		Y:          y,
		U:          u,
		V:          v,
		UpperLeft:  gfx.TexCoord{S: 0, T: 1},
		LowerRight: gfx.TexCoord{S: visible, T: 0},
		Uniforms:   c.Uniforms(),
	}

	if err := c.backend.Draw(op); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Compositor.Render",
			"error":    err.Error(),
		}).Error("Color conversion draw failed")
		return nil
	}

	return target.ColorTexture()
}
