package pump

import (
	"time"

	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/frame"
)

// mockTimeProvider implements clock.TimeProvider with manual time.
type mockTimeProvider struct {
	current time.Time
}

func newMockTimeProvider() *mockTimeProvider {
	return &mockTimeProvider{current: time.Unix(1000, 0)}
}

func (m *mockTimeProvider) Now() time.Time {
	return m.current
}

// mockDecoder is a scripted decoder. Its video clock reports the next
// queued frame's timestamp, falling back to the last delivered one, so
// tests can express exact admission decisions.
type mockDecoder struct {
	initialized bool
	hasAudio    bool
	playing     bool
	done        bool
	fps         float64
	width       int
	height      int
	duration    float64
	numFrames   uint64

	videoQueue []*frame.VideoFrame
	audioQueue []*frame.AudioFrame
	lastPTS    float64

	// generate, when set, makes DecodeVideoFrame produce an endless
	// supply of frames at lastPTS. Used for the bounded-drain test.
	generate bool

	started int
	stopped int
	paused  int
	resumed int
	seeks   []float64
	loops   []bool
}

func newMockDecoder() *mockDecoder {
	return &mockDecoder{
		initialized: true,
		fps:         30,
		width:       640,
		height:      480,
		duration:    10,
		numFrames:   300,
	}
}

// queueVideo appends a minimal valid frame at the given timestamp.
func (d *mockDecoder) queueVideo(pts float64) {
	d.videoQueue = append(d.videoQueue, &frame.VideoFrame{
		Width:   d.width,
		Height:  d.height,
		PTS:     pts,
		Y:       make([]byte, d.width*d.height),
		U:       make([]byte, (d.width/2)*(d.height/2)),
		V:       make([]byte, (d.width/2)*(d.height/2)),
		YStride: d.width,
		UStride: d.width / 2,
		VStride: d.width / 2,
	})
}

func (d *mockDecoder) queueAudio(pts float64) {
	d.audioQueue = append(d.audioQueue, &frame.AudioFrame{
		PTS:        pts,
		PCM:        make([]int16, 4800),
		SampleRate: 48000,
		Channels:   1,
	})
}

func (d *mockDecoder) DecodeAudioFrame() (*frame.AudioFrame, bool) {
	if len(d.audioQueue) == 0 {
		return nil, false
	}
	f := d.audioQueue[0]
	d.audioQueue = d.audioQueue[1:]
	return f, true
}

func (d *mockDecoder) DecodeVideoFrame() (*frame.VideoFrame, bool) {
	if d.generate {
		f := &frame.VideoFrame{PTS: d.lastPTS, Width: d.width, Height: d.height}
		return f, true
	}
	if len(d.videoQueue) == 0 {
		return nil, false
	}
	f := d.videoQueue[0]
	d.videoQueue = d.videoQueue[1:]
	d.lastPTS = f.PTS
	return f, true
}

func (d *mockDecoder) VideoClock() float64 {
	if d.generate {
		return d.lastPTS
	}
	if len(d.videoQueue) > 0 {
		return d.videoQueue[0].PTS
	}
	return d.lastPTS
}

func (d *mockDecoder) FramesPerSecond() float64 { return d.fps }

func (d *mockDecoder) Start()  { d.started++; d.playing = true }
func (d *mockDecoder) Stop()   { d.stopped++; d.playing = false }
func (d *mockDecoder) Pause()  { d.paused++; d.playing = false }
func (d *mockDecoder) Resume() { d.resumed++; d.playing = true }

func (d *mockDecoder) SeekToTime(seconds float64) {
	d.seeks = append(d.seeks, seconds)
	d.videoQueue = nil
	d.audioQueue = nil
	d.lastPTS = seconds
}

func (d *mockDecoder) SetLoop(loop bool) { d.loops = append(d.loops, loop) }

func (d *mockDecoder) IsInitialized() bool { return d.initialized }
func (d *mockDecoder) IsPlaying() bool     { return d.playing }
func (d *mockDecoder) IsDone() bool        { return d.done }
func (d *mockDecoder) HasAudio() bool      { return d.hasAudio }

func (d *mockDecoder) AudioFormat() audio.Format {
	return audio.Format{SampleRate: 48000, Channels: 1}
}

func (d *mockDecoder) FrameWidth() int         { return d.width }
func (d *mockDecoder) FrameHeight() int        { return d.height }
func (d *mockDecoder) Duration() float64       { return d.duration }
func (d *mockDecoder) NumberOfFrames() uint64  { return d.numFrames }

// mockPath is an audio.Path that records frames with a fixed buffer
// capacity and a settable consumed position.
type mockPath struct {
	capacity int
	queued   []*frame.AudioFrame
	flushes  int
	pts      float64
	plays    int
	stops    int
	pauses   int
	clears   int
}

func (m *mockPath) HasBufferSpace() bool { return len(m.queued) < m.capacity }

func (m *mockPath) QueueFrame(f *frame.AudioFrame) error {
	if !m.HasBufferSpace() {
		return audio.ErrQueueFull
	}
	m.queued = append(m.queued, f)
	return nil
}

func (m *mockPath) FlushBuffers()       { m.flushes++ }
func (m *mockPath) CurrentPTS() float64 { return m.pts }
func (m *mockPath) Play()               { m.plays++ }
func (m *mockPath) Pause()              { m.pauses++ }
func (m *mockPath) Stop()               { m.stops++ }
func (m *mockPath) ClearBuffers()       { m.clears++; m.queued = nil }
