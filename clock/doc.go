// Package clock provides the playback clock strategies that pace video
// frame presentation.
//
// Two interchangeable strategies implement the Source interface:
//
//   - AudioClock reports the audio path's consumed playback position,
//     so video is paced to what has actually been rendered as sound.
//   - WallClock is a free-running elapsed-seconds timer used when no
//     audio output is active. It can be re-based to an arbitrary
//     stream position after a seek, loop wrap, or resume.
//
// The strategy is selected once, when the player is constructed, based
// on whether an audio path is present.
//
// Time is read through the TimeProvider interface so tests can inject
// deterministic time.
package clock
