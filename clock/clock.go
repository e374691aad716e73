package clock

import (
	"github.com/sirupsen/logrus"
)

// Source produces the current playback position in seconds. The frame
// pump uses it as the pacing reference when deciding which video
// frames to present or skip.
type Source interface {
	// Seconds returns how far into the stream playback has progressed.
	Seconds() float64
}

// PositionSource reports a consumed audio playback position. It is the
// narrow slice of the audio path that AudioClock needs.
type PositionSource interface {
	CurrentPTS() float64
}

// AudioClock paces playback to the audio path's consumed position.
// The value only advances as audio is actually rendered, which gives
// audio priority: video is paced to audio, never the other way around.
type AudioClock struct {
	src PositionSource
}

// NewAudioClock creates a clock backed by the given position source.
func NewAudioClock(src PositionSource) *AudioClock {
	return &AudioClock{src: src}
}

// Seconds returns the audio path's consumed playback position.
func (c *AudioClock) Seconds() float64 {
	return c.src.CurrentPTS()
}

// WallClock is a free-running elapsed-seconds clock. It starts from an
// arbitrary stream offset and advances with real (or injected) time
// while running; while stopped it holds its last value.
type WallClock struct {
	tp      TimeProvider
	anchor  anchorState
	running bool
}

type anchorState struct {
	at      float64 // stream seconds at the anchor instant
	instant int64   // anchor instant, UnixNano
}

// NewWallClock creates a stopped wall clock reading zero. A nil
// provider selects the real system time.
func NewWallClock(tp TimeProvider) *WallClock {
	return &WallClock{tp: getTimeProvider(tp)}
}

// Start re-bases the clock to zero and starts it running.
func (c *WallClock) Start() {
	c.StartAt(0)
}

// StartAt re-bases the clock to the given stream offset and starts it
// running. Used after a seek, a loop wrap, or a resume, where the
// pacing reference must jump to a new stream position without a
// visible time discontinuity.
func (c *WallClock) StartAt(seconds float64) {
	logrus.WithFields(logrus.Fields{
		"function": "WallClock.StartAt",
		"seconds":  seconds,
	}).Debug("Re-basing wall clock")

	c.anchor = anchorState{at: seconds, instant: c.tp.Now().UnixNano()}
	c.running = true
}

// Stop freezes the clock. Seconds continues to return the value the
// clock had at the moment of stopping.
func (c *WallClock) Stop() {
	c.anchor = anchorState{at: c.Seconds(), instant: 0}
	c.running = false
}

// Running reports whether the clock is advancing.
func (c *WallClock) Running() bool {
	return c.running
}

// Seconds returns the elapsed stream position.
func (c *WallClock) Seconds() float64 {
	if !c.running {
		return c.anchor.at
	}
	elapsed := float64(c.tp.Now().UnixNano()-c.anchor.instant) / 1e9
	return c.anchor.at + elapsed
}
