// Package moviegl implements the playback core of a texture-based
// video player: clock-paced frame presentation, plane texture caching,
// YUV to RGB composition, and the transport state machine.
//
// The package sits between a decoder, which produces timestamped
// YUV420 video frames and compressed or PCM audio frames, and a
// graphics backend, which owns textures and runs the color-conversion
// pass. Everything in between is here: per-tick draining of both
// streams, selection of the frame to present, loop wraparound
// handling, and the brightness, contrast and gamma adjustments of the
// output.
//
// # Getting Started
//
// Create a Movie over an initialized decoder and drive it with Update
// once per display frame:
//
//	options := moviegl.NewOptions()
//
//	movie, err := moviegl.New(dec, options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	movie.Play()
//	for movie.IsPlaying() {
//	    movie.Update()
//	    if tex := movie.GetTexture(); tex != nil {
//	        draw(tex)
//	    }
//	}
//
// The Movie is tick-driven and single-threaded: all methods are
// bounded synchronous computations meant to be called from one logical
// thread of control. Pacing comes from the audio path's consumed
// position when the stream has audio output, and from a monotonic wall
// clock otherwise.
//
// Subpackages hold the layers: decoder defines the frame source
// contract, frame the plane layouts, audio the output paths, clock the
// pacing sources, gfx the backend abstraction with a pure Go software
// implementation, render the plane cache and compositor, and pump the
// per-tick drain loops.
package moviegl
