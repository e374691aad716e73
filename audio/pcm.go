package audio

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/clock"
	"github.com/opd-ai/moviegl/frame"
)

// defaultQueueCapacity bounds how many frames may sit uncommitted in
// the path between flushes. The pump's audio drain stops when the
// queue is full, which keeps per-tick work bounded.
const defaultQueueCapacity = 8

// PCMPath is a pure Go audio path. It buffers PCM frames, commits them
// on FlushBuffers, and advances its consumed position with wall time
// while playing, clamped to the end of committed audio.
//
// PCMPath is not safe for concurrent use; like the rest of the
// playback core it is driven from a single thread of control.
type PCMPath struct {
	tp       clock.TimeProvider
	format   Format
	capacity int

	queued []*frame.AudioFrame

	committedEnd float64
	cursor       float64
	haveCursor   bool

	playing     bool
	lastInstant time.Time
}

// NewPCMPath creates a stopped path configured for the given format.
// A nil provider selects the real system time.
func NewPCMPath(format Format, tp clock.TimeProvider) *PCMPath {
	logrus.WithFields(logrus.Fields{
		"function":    "NewPCMPath",
		"sample_rate": format.SampleRate,
		"channels":    format.Channels,
	}).Info("Creating PCM audio path")

	if tp == nil {
		tp = clock.RealTimeProvider{}
	}

	return &PCMPath{
		tp:       tp,
		format:   format,
		capacity: defaultQueueCapacity,
	}
}

// Format returns the configured sample format.
func (p *PCMPath) Format() Format {
	return p.format
}

// HasBufferSpace reports whether another frame can be queued before
// the next flush.
func (p *PCMPath) HasBufferSpace() bool {
	return len(p.queued) < p.capacity
}

// QueueFrame appends a frame to the uncommitted queue.
func (p *PCMPath) QueueFrame(f *frame.AudioFrame) error {
	if f == nil {
		return ErrNilFrame
	}
	if !p.HasBufferSpace() {
		return ErrQueueFull
	}
	p.queued = append(p.queued, f)
	return nil
}

// FlushBuffers commits every queued frame, extending the consumable
// span of audio. The first commit after construction or ClearBuffers
// snaps the consumed position to the first frame's timestamp, so the
// clock lands on the new stream position after a seek.
func (p *PCMPath) FlushBuffers() {
	p.advance()

	for _, f := range p.queued {
		if !p.haveCursor {
			p.cursor = f.PTS
			p.haveCursor = true
			p.lastInstant = p.tp.Now()
		}
		end := f.PTS + f.Duration()
		if end > p.committedEnd {
			p.committedEnd = end
		}
	}

	if n := len(p.queued); n > 0 {
		logrus.WithFields(logrus.Fields{
			"function":      "PCMPath.FlushBuffers",
			"frames":        n,
			"committed_end": p.committedEnd,
			"cursor":        p.cursor,
		}).Debug("Committed audio frames")
	}

	p.queued = p.queued[:0]
}

// CurrentPTS returns the consumed playback position in seconds.
func (p *PCMPath) CurrentPTS() float64 {
	p.advance()
	return p.cursor
}

// Play starts or resumes consumption.
func (p *PCMPath) Play() {
	p.playing = true
	p.lastInstant = p.tp.Now()
}

// Pause halts consumption; the consumed position holds its value.
func (p *PCMPath) Pause() {
	p.advance()
	p.playing = false
}

// Stop halts consumption.
func (p *PCMPath) Stop() {
	p.advance()
	p.playing = false
}

// ClearBuffers discards all queued and committed audio and resets the
// consumed position. The next flush re-anchors the position to the
// incoming frames' timestamps.
func (p *PCMPath) ClearBuffers() {
	logrus.WithFields(logrus.Fields{
		"function": "PCMPath.ClearBuffers",
		"dropped":  len(p.queued),
	}).Debug("Clearing audio buffers")

	p.queued = p.queued[:0]
	p.committedEnd = 0
	p.cursor = 0
	p.haveCursor = false
}

// advance moves the consumed position forward by the wall time elapsed
// since the last accounting, clamped to the end of committed audio.
func (p *PCMPath) advance() {
	if !p.playing || !p.haveCursor {
		return
	}
	now := p.tp.Now()
	p.cursor += now.Sub(p.lastInstant).Seconds()
	if p.cursor > p.committedEnd {
		p.cursor = p.committedEnd
	}
	p.lastInstant = now
}
