// Package frame defines the timestamped media frame types exchanged
// between the decoder, the audio path, and the rendering pipeline.
//
// Video frames carry planar YUV420 data: a full-resolution luminance
// plane (Y) and two half-resolution chrominance planes (U, V). Each
// plane has its own line stride, which may exceed the visible frame
// width due to decoder padding. Audio frames carry decoded PCM samples
// or, for decoders that emit compressed audio, an Opus packet payload.
//
// The Geometry value type captures the dimensions and strides of a
// video frame so that texture lifetime decisions can be made by
// structural comparison rather than by comparing raw integers scattered
// across the caller.
package frame
