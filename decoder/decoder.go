package decoder

import (
	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/frame"
)

// Decoder is the external demuxer/decoder collaborator.
//
// All methods are invoked from the playback core's single thread of
// control; implementations that decode on background goroutines must
// make these entry points safe to call from one goroutine.
type Decoder interface {
	// DecodeAudioFrame pulls the next decoded audio frame. Ownership
	// of the frame transfers to the caller when ok is true.
	DecodeAudioFrame() (f *frame.AudioFrame, ok bool)

	// DecodeVideoFrame pulls the next decoded video frame. Ownership
	// of the frame transfers to the caller when ok is true.
	DecodeVideoFrame() (f *frame.VideoFrame, ok bool)

	// VideoClock returns the current video decode position in
	// stream-relative seconds. It moves with DecodeVideoFrame and
	// jumps backward on a loop wrap or seek.
	VideoClock() float64

	// FramesPerSecond returns the stream's nominal frame rate.
	FramesPerSecond() float64

	// Transport commands.
	Start()
	Stop()
	Pause()
	Resume()
	SeekToTime(seconds float64)
	SetLoop(loop bool)

	// IsInitialized reports whether the decoder opened its input
	// successfully. Every core operation is a no-op when false.
	IsInitialized() bool

	// IsPlaying reports whether the decoder is advancing.
	IsPlaying() bool

	// IsDone reports whether the stream has been fully consumed.
	IsDone() bool

	// Stream properties.
	HasAudio() bool
	AudioFormat() audio.Format
	FrameWidth() int
	FrameHeight() int
	Duration() float64
	NumberOfFrames() uint64
}
