// Package audio defines the audio output path consumed by the playback
// core, together with a pure Go reference implementation.
//
// The playback core never touches an audio device directly. It hands
// timestamped frames to a Path while the path reports buffer space,
// flushes the path once per tick, and reads back the consumed playback
// position. That position is what the audio-driven playback clock
// reports, so video pacing follows what has actually become audible.
//
// PCMPath is an in-process reference path: it buffers PCM frames and
// advances its consumed position with (injectable) wall time, bounded
// by the duration of committed audio. It is suitable for headless
// playback and deterministic tests; a real device-backed path
// implements the same interface.
//
// OpusPath wraps any Path and decodes Opus packets to PCM before
// queueing, for decoders that emit compressed audio. Decoding uses the
// pure Go pion/opus decoder.
package audio
