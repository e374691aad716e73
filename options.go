package moviegl

import (
	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/clock"
	"github.com/opd-ai/moviegl/gfx"
)

// Options contains player construction options.
type Options struct {
	// PlayAudio enables the audio output path when the stream has
	// audio. When false, audio frames are still pulled and discarded
	// each tick to keep the decoder's stream position consistent.
	PlayAudio bool

	// AudioPath overrides the audio output path. Nil selects a PCM
	// reference path configured from the decoder's audio format.
	AudioPath audio.Path

	// Backend is the graphics backend. Nil selects the pure Go
	// software backend.
	Backend gfx.Backend

	// TimeProvider supplies wall time for the playback clock. Nil
	// selects the real system time; tests inject deterministic time.
	TimeProvider clock.TimeProvider
}

// NewOptions creates the default options: audio enabled, software
// rendering, real time.
func NewOptions() *Options {
	return &Options{
		PlayAudio: true,
	}
}
