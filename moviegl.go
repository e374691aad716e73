package moviegl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/clock"
	"github.com/opd-ai/moviegl/decoder"
	"github.com/opd-ai/moviegl/gfx"
	"github.com/opd-ai/moviegl/pump"
	"github.com/opd-ai/moviegl/render"
)

// State is the transport state of a Movie.
type State uint8

const (
	// StateStopped indicates playback has not started or was stopped.
	StateStopped State = iota
	// StatePlaying indicates playback is advancing.
	StatePlaying
	// StatePaused indicates playback is halted but resumable.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// Movie drives playback of a decoded video+audio stream: it paces
// video presentation to the playback clock, manages the plane texture
// cache, composites planes into a color output texture, and exposes
// the transport operations.
//
// A Movie is single-threaded and tick-driven: the caller invokes
// Update once per display frame from one logical thread of control,
// and every operation is a bounded synchronous computation.
type Movie struct {
	id  string
	log *logrus.Entry

	dec  decoder.Decoder
	path audio.Path // nil when no audio output is active

	wall *clock.WallClock
	src  clock.Source

	pump  *pump.Pump
	cache *render.PlaneCache
	comp  *render.Compositor

	texture gfx.Texture

	state    State
	width    int
	height   int
	duration float64
}

// New creates a player over an initialized decoder. The decoder must
// have opened its input: construction fails outright on an
// uninitialized decoder, and the caller must not proceed.
//
// An audio path is attached only when options enable audio and the
// stream has an audio track; its presence selects the audio-driven
// clock strategy for the lifetime of the player. A failure to compile
// the color-conversion program is reported diagnostically but not
// fatal: the player works, producing no output texture.
func New(dec decoder.Decoder, options *Options) (*Movie, error) {
	if dec == nil {
		return nil, ErrNilDecoder
	}
	if !dec.IsInitialized() {
		return nil, ErrDecoderNotInitialized
	}
	if options == nil {
		options = NewOptions()
	}

	backend := options.Backend
	if backend == nil {
		backend = gfx.NewSoftwareBackend()
	}

	m := &Movie{
		id:    uuid.New().String(),
		dec:   dec,
		wall:  clock.NewWallClock(options.TimeProvider),
		cache: render.NewPlaneCache(backend),
		comp:  render.NewCompositor(backend),
		state: StateStopped,
	}
	m.log = logrus.WithField("movie_id", m.id)

	if dec.HasAudio() {
		// The audio format must be read even when output is disabled,
		// so the decoder configures its audio pipeline consistently.
		format := dec.AudioFormat()
		if options.PlayAudio {
			m.path = options.AudioPath
			if m.path == nil {
				// The Opus adapter passes PCM frames through untouched,
				// so it is safe as the default regardless of what the
				// decoder emits.
				m.path = audio.NewOpusPath(audio.NewPCMPath(format, options.TimeProvider))
			}
		}
	}

	if m.path != nil {
		m.src = clock.NewAudioClock(m.path)
	} else {
		m.src = m.wall
	}
	m.pump = pump.New(dec, m.path, m.wall, m.src)

	m.log.WithFields(logrus.Fields{
		"function":   "New",
		"has_audio":  dec.HasAudio(),
		"audio_path": m.path != nil,
		"degraded":   m.comp.Degraded(),
		"duration":   dec.Duration(),
		"frame_rate": dec.FramesPerSecond(),
	}).Info("Movie created")

	return m, nil
}

// ID returns the player's instance identifier, carried in its logs.
func (m *Movie) ID() string {
	return m.id
}

// Update runs one playback tick: drain audio, pace the clock, drain
// video, and on an accepted frame upload its planes and run the
// color-conversion pass. When no frame qualifies the previous output
// texture remains valid and unchanged.
func (m *Movie) Update() {
	if !m.dec.IsInitialized() {
		return
	}

	report := m.pump.Tick()
	if report.Skipped > 0 {
		m.log.WithFields(logrus.Fields{
			"function": "Movie.Update",
			"skipped":  report.Skipped,
			"clock":    report.Clock,
		}).Debug("Skipped video frames")
	}
	if report.Frame == nil {
		return
	}

	if _, err := m.cache.Ensure(report.Frame); err != nil {
		m.log.WithFields(logrus.Fields{
			"function": "Movie.Update",
			"error":    err.Error(),
		}).Error("Plane texture allocation failed")
		return
	}
	m.width = m.cache.Geometry().Width
	m.height = m.cache.Geometry().Height

	if err := m.cache.Upload(report.Frame); err != nil {
		m.log.WithFields(logrus.Fields{
			"function": "Movie.Update",
			"error":    err.Error(),
		}).Error("Plane upload failed")
		return
	}

	if tex := m.comp.Render(m.cache); tex != nil {
		m.texture = tex
	}
}

// GetTexture returns the output texture of the most recent successful
// render, or nil before the first decoded frame and after a seek.
func (m *Movie) GetTexture() gfx.Texture {
	return m.texture
}

// CheckNewFrame reports whether the current video position is behind
// the audio-consumed position, i.e. whether another Update would have
// work to do. Without an audio path it always reports false.
func (m *Movie) CheckNewFrame() bool {
	if m.path == nil {
		return false
	}
	if !m.dec.IsInitialized() {
		return false
	}
	return m.dec.VideoClock() < m.path.CurrentPTS()
}

// GetCurrentTime returns the current video position in seconds.
func (m *Movie) GetCurrentTime() float64 {
	return m.dec.VideoClock()
}

// GetFramerate returns the stream's nominal frame rate.
func (m *Movie) GetFramerate() float64 {
	return m.dec.FramesPerSecond()
}

// GetNumFrames returns the stream's total frame count.
func (m *Movie) GetNumFrames() uint64 {
	return m.dec.NumberOfFrames()
}

// GetDuration returns the stream duration snapshotted at Play, or
// zero before playback starts.
func (m *Movie) GetDuration() float64 {
	return m.duration
}

// GetSize returns the frame dimensions snapshotted at Play and kept
// current with the most recent rendered frame.
func (m *Movie) GetSize() (width, height int) {
	return m.width, m.height
}

// Progress returns playback progress in [0,1], or zero when the
// duration is unknown.
func (m *Movie) Progress() float64 {
	if m.duration <= 0 {
		return 0
	}
	p := m.dec.VideoClock() / m.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IsPlaying reports whether the decoder is advancing.
func (m *Movie) IsPlaying() bool {
	return m.dec.IsPlaying()
}

// IsDone reports whether the stream has been fully consumed.
func (m *Movie) IsDone() bool {
	return m.dec.IsDone()
}

// State returns the transport state.
func (m *Movie) State() State {
	return m.state
}

// Play starts playback: it starts the decoder, snapshots the stream's
// dimensions and duration, and starts the wall clock at zero.
func (m *Movie) Play() {
	if !m.dec.IsInitialized() {
		return
	}

	m.dec.Start()
	m.width = m.dec.FrameWidth()
	m.height = m.dec.FrameHeight()
	m.duration = m.dec.Duration()
	if m.path != nil {
		m.path.Play()
	}
	m.wall.Start()
	m.state = StatePlaying

	m.log.WithFields(logrus.Fields{
		"function": "Movie.Play",
		"width":    m.width,
		"height":   m.height,
		"duration": m.duration,
	}).Info("Playback started")
}

// Stop halts the decoder, the audio path, and the clock.
func (m *Movie) Stop() {
	if !m.dec.IsInitialized() {
		return
	}

	m.dec.Stop()
	if m.path != nil {
		m.path.Stop()
	}
	m.wall.Stop()
	m.state = StateStopped

	m.log.WithFields(logrus.Fields{
		"function": "Movie.Stop",
	}).Info("Playback stopped")
}

// Pause halts the decoder and the audio path; the clock freezes.
func (m *Movie) Pause() {
	if !m.dec.IsInitialized() {
		return
	}

	m.dec.Pause()
	if m.path != nil {
		m.path.Pause()
	}
	m.wall.Stop()
	m.state = StatePaused

	m.log.WithFields(logrus.Fields{
		"function": "Movie.Pause",
	}).Info("Playback paused")
}

// Resume restarts the decoder and audio path after a pause. The wall
// clock re-bases to the decoder's current video position, not to zero,
// so there is no visible time jump.
func (m *Movie) Resume() {
	if !m.dec.IsInitialized() {
		return
	}

	m.dec.Resume()
	if m.path != nil {
		m.path.Play()
	}
	m.wall.StartAt(m.dec.VideoClock())
	m.state = StatePlaying

	m.log.WithFields(logrus.Fields{
		"function": "Movie.Resume",
		"at":       m.dec.VideoClock(),
	}).Info("Playback resumed")
}

// SeekToTime moves playback to the given position. Audio buffers are
// cleared, the wall clock re-bases to the target, and the output
// texture is invalidated so no stale frame is shown until a frame at
// the new position lands.
func (m *Movie) SeekToTime(seconds float64) {
	if !m.dec.IsInitialized() {
		return
	}

	if m.path != nil {
		m.path.ClearBuffers()
	}
	m.dec.SeekToTime(seconds)
	m.wall.StartAt(seconds)
	if m.path != nil {
		m.path.Play()
	}
	m.texture = nil

	m.log.WithFields(logrus.Fields{
		"function": "Movie.SeekToTime",
		"seconds":  seconds,
	}).Info("Seek")
}

// SetLoop forwards the loop flag to the decoder. The wraparound
// timestamps a looping decoder produces are detected and handled by
// the per-tick pump.
func (m *Movie) SetLoop(loop bool) {
	if !m.dec.IsInitialized() {
		return
	}
	m.dec.SetLoop(loop)
}

// SetBrightness sets the additive luma offset applied before the
// conversion matrix. Zero is neutral.
func (m *Movie) SetBrightness(brightness float64) {
	m.comp.SetBrightness(brightness)
}

// SetContrast sets the multiplicative RGB scale. One is neutral.
func (m *Movie) SetContrast(contrast float64) {
	m.comp.SetContrast(contrast)
}

// SetGamma sets the per-channel power applied last. (1,1,1) is
// neutral.
func (m *Movie) SetGamma(r, g, b float64) {
	m.comp.SetGamma(r, g, b)
}
