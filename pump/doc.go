// Package pump implements the per-tick synchronization loop that keeps
// video presentation paced to the playback clock.
//
// Each tick drains available audio into the audio path (or pulls and
// discards audio when the stream has audio but no path is attached),
// recomputes the clock value, and then drains video frames against it.
// A tick may consume several stale video frames to catch up, counting
// the superseded ones as skipped; it admits a frame up to half a frame
// period ahead of the clock when nothing has been accepted yet, so
// rounding between decode and display cadence does not judder.
//
// A backward jump in the decoder's video clock is a loop wrap: the
// wall clock is re-based to the new, lower timestamp and the drain
// ends with that frame as the one to display. The drain is bounded at
// 100 iterations per tick as a safety valve against runaway decode
// loops on corrupt streams.
package pump
