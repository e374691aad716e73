package audio

import "github.com/opd-ai/moviegl/frame"

// Format describes the sample format an audio path is configured for.
type Format struct {
	SampleRate uint32
	Channels   int
}

// Path is the audio output collaborator. The frame pump feeds it while
// it reports buffer space, flushes it once per tick, and reads the
// consumed playback position as the audio clock value.
//
// Implementations own any device-side concurrency; all Path methods
// are invoked from the single update thread of control.
type Path interface {
	// HasBufferSpace reports whether another frame can be queued now.
	HasBufferSpace() bool

	// QueueFrame hands a frame to the path. Ownership of the frame
	// transfers to the path on success.
	QueueFrame(f *frame.AudioFrame) error

	// FlushBuffers commits queued frames, making them consumable.
	FlushBuffers()

	// CurrentPTS returns the consumed playback position in seconds.
	CurrentPTS() float64

	// Play starts or resumes consumption.
	Play()

	// Pause halts consumption; CurrentPTS holds its value.
	Pause()

	// Stop halts consumption.
	Stop()

	// ClearBuffers discards queued and committed audio, resetting the
	// consumed position. Used on seek.
	ClearBuffers()
}
