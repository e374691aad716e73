package render

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/frame"
	"github.com/opd-ai/moviegl/gfx"
)

// PlaneCache owns the three plane textures and the offscreen target.
// Plane textures are sized to line strides, the target to the visible
// frame; all four live and die together.
type PlaneCache struct {
	backend gfx.Backend

	geom   frame.Geometry
	y      gfx.Texture
	u      gfx.Texture
	v      gfx.Texture
	target gfx.Target
}

// NewPlaneCache creates an empty cache on the given backend.
func NewPlaneCache(backend gfx.Backend) *PlaneCache {
	return &PlaneCache{backend: backend}
}

// Ensure makes the cached textures match the frame's geometry,
// reallocating all of them as a unit when the frame's width or height
// differs from the cached dimensions, or when any texture is absent.
// It returns whether a reallocation happened.
//
// On allocation failure nothing is swapped: the cache keeps its
// previous consistent set.
func (c *PlaneCache) Ensure(f *frame.VideoFrame) (bool, error) {
	g := frame.GeometryOf(f)
	if c.y != nil && c.u != nil && c.v != nil && c.target != nil && !c.geom.SizeChanged(g) {
		return false, nil
	}

	logrus.WithFields(logrus.Fields{
		"function": "PlaneCache.Ensure",
		"width":    g.Width,
		"height":   g.Height,
		"y_stride": g.YStride,
		"u_stride": g.UStride,
		"v_stride": g.VStride,
	}).Info("Reallocating plane textures")

	y, err := c.backend.NewTexture(g.YStride, g.Height)
	if err != nil {
		return false, fmt.Errorf("luma texture: %w", err)
	}
	u, err := c.backend.NewTexture(g.UStride, g.ChromaHeight())
	if err != nil {
		return false, fmt.Errorf("chroma-blue texture: %w", err)
	}
	v, err := c.backend.NewTexture(g.VStride, g.ChromaHeight())
	if err != nil {
		return false, fmt.Errorf("chroma-red texture: %w", err)
	}
	target, err := c.backend.NewTarget(g.Width, g.Height)
	if err != nil {
		return false, fmt.Errorf("offscreen target: %w", err)
	}

	c.geom = g
	c.y, c.u, c.v = y, u, v
	c.target = target
	return true, nil
}

// Upload copies each plane's raw bytes into its texture's full extent.
func (c *PlaneCache) Upload(f *frame.VideoFrame) error {
	if c.y == nil || c.u == nil || c.v == nil {
		return fmt.Errorf("plane cache empty")
	}

	if err := uploadPlane(c.y, f.Y); err != nil {
		return fmt.Errorf("luma plane: %w", err)
	}
	if err := uploadPlane(c.u, f.U); err != nil {
		return fmt.Errorf("chroma-blue plane: %w", err)
	}
	if err := uploadPlane(c.v, f.V); err != nil {
		return fmt.Errorf("chroma-red plane: %w", err)
	}
	return nil
}

func uploadPlane(tex gfx.Texture, data []byte) error {
	need := tex.Width() * tex.Height()
	if len(data) < need {
		return fmt.Errorf("%w: plane %d bytes, texture needs %d", gfx.ErrUploadSize, len(data), need)
	}
	return tex.Upload(data[:need])
}

// Geometry returns the geometry of the cached textures. Zero until the
// first Ensure.
func (c *PlaneCache) Geometry() frame.Geometry {
	return c.geom
}

// Planes returns the cached luma, chroma-blue, and chroma-red textures.
func (c *PlaneCache) Planes() (y, u, v gfx.Texture) {
	return c.y, c.u, c.v
}

// Target returns the cached offscreen target, or nil before the first
// Ensure.
func (c *PlaneCache) Target() gfx.Target {
	return c.target
}
