// Package decoder defines the pull-based frame source the playback
// core consumes.
//
// The decoder is an external collaborator: it owns the container,
// the decode position, and any internal threading. The playback core
// treats it purely as a capability set of stream properties, transport
// commands, and timestamped frame pulls.
//
// Frame pulls return (frame, ok). A false result means no frame is
// currently available; that is an expected steady-state condition,
// not an error, and ends the caller's drain loop for the tick.
package decoder
