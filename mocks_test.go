package moviegl

import (
	"time"

	"github.com/opd-ai/moviegl/audio"
	"github.com/opd-ai/moviegl/frame"
)

// mockTimeProvider implements clock.TimeProvider with manually
// advanced time for deterministic pacing.
type mockTimeProvider struct {
	current time.Time
}

func newMockTimeProvider() *mockTimeProvider {
	return &mockTimeProvider{current: time.Unix(1000, 0)}
}

func (m *mockTimeProvider) Now() time.Time {
	return m.current
}

func (m *mockTimeProvider) advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// mockDecoder is a scripted decoder for facade tests. Its video clock
// reports the next queued frame's timestamp, falling back to the last
// delivered one.
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
		width:       64,
		height:      48,
		duration:    10,
		numFrames:   300,
	}
}

// queueVideo appends a valid gray frame at the given timestamp.
func (d *mockDecoder) queueVideo(pts float64) {
	y := make([]byte, d.width*d.height)
	for i := range y {
		y[i] = 200
	}
	u := make([]byte, (d.width/2)*(d.height/2))
	v := make([]byte, (d.width/2)*(d.height/2))
	for i := range u {
		u[i] = 128
		v[i] = 128
	}
	d.videoQueue = append(d.videoQueue, &frame.VideoFrame{
		Width:   d.width,
		Height:  d.height,
		PTS:     pts,
		Y:       y,
		U:       u,
		V:       v,
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
	if len(d.videoQueue) == 0 {
		return nil, false
	}
	f := d.videoQueue[0]
	d.videoQueue = d.videoQueue[1:]
	d.lastPTS = f.PTS
	return f, true
}

func (d *mockDecoder) VideoClock() float64 {
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

func (d *mockDecoder) FrameWidth() int        { return d.width }
func (d *mockDecoder) FrameHeight() int       { return d.height }
func (d *mockDecoder) Duration() float64      { return d.duration }
func (d *mockDecoder) NumberOfFrames() uint64 { return d.numFrames }

// mockAudioPath records calls and exposes a settable consumed
// position.
type mockAudioPath struct {
	capacity int
	queued   []*frame.AudioFrame
	flushes  int
	pts      float64
	plays    int
	stops    int
	pauses   int
	clears   int
}

func newMockAudioPath() *mockAudioPath {
	return &mockAudioPath{capacity: 8}
}

func (m *mockAudioPath) HasBufferSpace() bool { return len(m.queued) < m.capacity }

func (m *mockAudioPath) QueueFrame(f *frame.AudioFrame) error {
	if !m.HasBufferSpace() {
		return audio.ErrQueueFull
	}
	m.queued = append(m.queued, f)
	return nil
}

func (m *mockAudioPath) FlushBuffers()       { m.flushes++ }
func (m *mockAudioPath) CurrentPTS() float64 { return m.pts }
func (m *mockAudioPath) Play()               { m.plays++ }
func (m *mockAudioPath) Pause()              { m.pauses++ }
func (m *mockAudioPath) Stop()               { m.stops++ }
func (m *mockAudioPath) ClearBuffers()       { m.clears++; m.queued = nil }
