package pump

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/clock"
	"github.com/opd-ai/moviegl/decoder"
	"github.com/opd-ai/moviegl/frame"
)

// MaxDrainIterations caps how many video frames one tick may accept or
// skip. The cap only matters for pathological streams whose timestamps
// never catch up to the clock.
const MaxDrainIterations = 100

// Report is the outcome of one tick. It is the pump's whole output:
// the caller decides what to render from it, which keeps the tick's
// ordering and partial results observable in tests.
type Report struct {
	// Frame is the frame to present, or nil when no frame qualified
	// this tick (the previous output remains valid).
	Frame *frame.VideoFrame

	// Skipped counts frames that were superseded before display.
	Skipped int

	// Looped reports that a backward timestamp jump re-based the wall
	// clock this tick.
	Looped bool

	// Clock is the pacing value the video drain ran against.
	Clock float64

	// AudioQueued counts frames handed to the audio path.
	AudioQueued int

	// AudioDiscarded counts frames pulled and dropped because the
	// stream has audio but no path is attached.
	AudioDiscarded int
}

// Pump drives the per-tick synchronization loop against a decoder, an
// optional audio path, and the wall clock.
type Pump struct {
	dec  decoder.Decoder
	path audio.Path // nil when no audio output is active
	wall *clock.WallClock
	src  clock.Source
}

// New creates a pump. The path may be nil; the wall clock is required
// because loop wraps re-base it even when the pacing source is audio.
func New(dec decoder.Decoder, path audio.Path, wall *clock.WallClock, src clock.Source) *Pump {
	return &Pump{dec: dec, path: path, wall: wall, src: src}
}

// Tick runs one synchronization pass. It is a bounded, synchronous
// computation; a failed frame pull is never retried within the tick.
func (p *Pump) Tick() Report {
	var r Report
	if !p.dec.IsInitialized() {
		return r
	}

	p.drainAudio(&r)
	r.Clock = p.src.Seconds()
	p.drainVideo(&r)
	return r
}

// drainAudio feeds the audio path while it has buffer space, then
// flushes it so the queued frames become consumable. Without a path,
// audio frames are still pulled and discarded to keep the decoder's
// stream position consistent.
func (p *Pump) drainAudio(r *Report) {
	if p.path == nil {
		if !p.dec.HasAudio() {
			return
		}
		for {
			if _, ok := p.dec.DecodeAudioFrame(); !ok {
				break
			}
			r.AudioDiscarded++
		}
		return
	}

	for p.path.HasBufferSpace() {
		af, ok := p.dec.DecodeAudioFrame()
		if !ok {
			break
		}
		if err := p.path.QueueFrame(af); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Pump.drainAudio",
				"pts":      af.PTS,
				"error":    err.Error(),
			}).Error("Audio path rejected frame")
			break
		}
		r.AudioQueued++
	}

	p.path.FlushBuffers()
}

// drainVideo advances the decoder until its video clock catches up to
// the pacing value, keeping only the newest qualifying frame.
func (p *Pump) drainVideo(r *Report) {
	frameDuration := 0.0
	if fps := p.dec.FramesPerSecond(); fps > 0 {
		frameDuration = 1.0 / fps
	}

	hasVideo := false
	count := 0
	prevClock := p.dec.VideoClock()

	for count < MaxDrainIterations {
		bias := 0.0
		if !hasVideo {
			bias = frameDuration * 0.5
		}
		if p.dec.VideoClock() >= r.Clock+bias {
			break
		}
		count++

		f, ok := p.dec.DecodeVideoFrame()
		if !ok {
			break // no frame ready yet this tick, not an error
		}
		if hasVideo {
			r.Skipped++
			logrus.WithFields(logrus.Fields{
				"function": "Pump.drainVideo",
				"pts":      p.dec.VideoClock(),
			}).Debug("Skipped video frame")
		}
		hasVideo = true
		r.Frame = f

		if prevClock > p.dec.VideoClock() {
			// Backward jump: the stream looped. Re-base the wall
			// clock to the post-wrap position and present this frame.
			r.Looped = true
			p.wall.StartAt(p.dec.VideoClock())
			logrus.WithFields(logrus.Fields{
				"function": "Pump.drainVideo",
				"pts":      p.dec.VideoClock(),
			}).Debug("Loop wrap detected, wall clock re-based")
			break
		}
		prevClock = p.dec.VideoClock()
	}
}
