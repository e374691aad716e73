package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/pion/opus"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/frame"
)

// opusFrameBufferSize holds one decoded Opus frame.
// Opus frames are typically small, so 1920 samples (40ms at 48kHz)
// suffice; *2 for int16 size.
const opusFrameBufferSize = 1920 * 2

// opusSampleRate is the decoder output rate mandated by the codec.
const opusSampleRate = 48000

// OpusPath wraps another Path and decodes Opus packets to PCM before
// queueing them. Frames that already carry PCM pass through untouched,
// so the adapter can sit in front of any path regardless of what the
// decoder emits.
type OpusPath struct {
	inner Path
	dec   *opus.Decoder
}

// NewOpusPath creates an Opus-decoding adapter around the given path.
func NewOpusPath(inner Path) *OpusPath {
	logrus.WithFields(logrus.Fields{
		"function": "NewOpusPath",
	}).Info("Creating Opus audio path adapter")

	decoder := opus.NewDecoder()
	return &OpusPath{
		inner: inner,
		dec:   &decoder,
	}
}

// HasBufferSpace reports the inner path's buffer space.
func (p *OpusPath) HasBufferSpace() bool {
	return p.inner.HasBufferSpace()
}

// QueueFrame decodes the frame's Opus payload, if any, then delegates
// to the inner path.
func (p *OpusPath) QueueFrame(f *frame.AudioFrame) error {
	if f == nil {
		return ErrNilFrame
	}
	if len(f.Opus) == 0 {
		return p.inner.QueueFrame(f)
	}

	output := make([]byte, opusFrameBufferSize)
	bandwidth, isStereo, err := p.dec.Decode(f.Opus, output)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "OpusPath.QueueFrame",
			"data_size": len(f.Opus),
			"error":     err.Error(),
		}).Error("Opus decode failed")
		return fmt.Errorf("%w: %v", ErrOpusDecode, err)
	}

	channels := 1
	if isStereo {
		channels = 2
	}

	// Convert []byte to []int16 (little-endian).
	pcm := make([]int16, len(output)/2)
	for i := range pcm {
		pcm[i] = int16(binary.LittleEndian.Uint16(output[i*2:]))
	}

	logrus.WithFields(logrus.Fields{
		"function":  "OpusPath.QueueFrame",
		"bandwidth": bandwidth.String(),
		"is_stereo": isStereo,
		"pts":       f.PTS,
	}).Debug("Decoded Opus audio frame")

	f.PCM = pcm
	f.SampleRate = opusSampleRate
	f.Channels = channels
	f.Opus = nil

	return p.inner.QueueFrame(f)
}

// FlushBuffers delegates to the inner path.
func (p *OpusPath) FlushBuffers() {
	p.inner.FlushBuffers()
}

// CurrentPTS delegates to the inner path.
func (p *OpusPath) CurrentPTS() float64 {
	return p.inner.CurrentPTS()
}

// Play delegates to the inner path.
func (p *OpusPath) Play() {
	p.inner.Play()
}

// Pause delegates to the inner path.
func (p *OpusPath) Pause() {
	p.inner.Pause()
}

// Stop delegates to the inner path.
func (p *OpusPath) Stop() {
	p.inner.Stop()
}

// ClearBuffers delegates to the inner path.
func (p *OpusPath) ClearBuffers() {
	p.inner.ClearBuffers()
}
