package frame

import "fmt"

// VideoFrame represents a decoded video frame in planar YUV420 format.
//
// The U and V planes are half the Y plane's resolution in both
// dimensions. Plane buffers are stride-padded: each stored row is
// YStride (respectively UStride, VStride) bytes wide even though only
// Width (Width/2) pixels of it are visible.
type VideoFrame struct {
	Width  int
	Height int

	// PTS is the presentation timestamp in stream-relative seconds.
	PTS float64

	Y []byte // Luminance plane
	U []byte // Chrominance U plane
	V []byte // Chrominance V plane

	YStride int // Stride for Y plane
	UStride int // Stride for U plane
	VStride int // Stride for V plane
}

// Validate checks that the frame's dimensions, strides, and plane
// buffers are consistent with the YUV420 layout.
func (f *VideoFrame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}
	if f.YStride < f.Width {
		return fmt.Errorf("%w: Y stride %d, width %d", ErrStrideTooSmall, f.YStride, f.Width)
	}
	if f.UStride < f.Width/2 {
		return fmt.Errorf("%w: U stride %d, width %d", ErrStrideTooSmall, f.UStride, f.Width)
	}
	if f.VStride < f.Width/2 {
		return fmt.Errorf("%w: V stride %d, width %d", ErrStrideTooSmall, f.VStride, f.Width)
	}

	chromaHeight := f.Height / 2
	if len(f.Y) < f.YStride*f.Height {
		return fmt.Errorf("%w: Y plane %d bytes, need %d", ErrPlaneTooSmall, len(f.Y), f.YStride*f.Height)
	}
	if len(f.U) < f.UStride*chromaHeight {
		return fmt.Errorf("%w: U plane %d bytes, need %d", ErrPlaneTooSmall, len(f.U), f.UStride*chromaHeight)
	}
	if len(f.V) < f.VStride*chromaHeight {
		return fmt.Errorf("%w: V plane %d bytes, need %d", ErrPlaneTooSmall, len(f.V), f.VStride*chromaHeight)
	}

	return nil
}

// AudioFrame represents a timestamped block of decoded audio samples.
//
// Most decoders deliver PCM directly. Decoders that emit compressed
// audio set Opus instead; an audio.OpusPath decodes the packet before
// queueing it on the underlying device path.
type AudioFrame struct {
	// PTS is the presentation timestamp in stream-relative seconds.
	PTS float64

	PCM        []int16
	SampleRate uint32
	Channels   int

	// Opus holds a compressed packet when the decoder does not
	// deliver PCM. Nil for already-decoded frames.
	Opus []byte
}

// Duration returns the playable duration of the frame in seconds.
// Frames without PCM data (or with an unset format) report zero.
func (f *AudioFrame) Duration() float64 {
	if f.SampleRate == 0 || f.Channels == 0 {
		return 0
	}
	return float64(len(f.PCM)/f.Channels) / float64(f.SampleRate)
}
