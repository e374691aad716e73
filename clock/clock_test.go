package clock

import (
	"testing"
	"time"
)

// mockTimeProvider implements TimeProvider with manually advanced time.
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

// TestWallClockStartsStopped verifies the initial state reads zero.
func TestWallClockStartsStopped(t *testing.T) {
	c := NewWallClock(newMockTimeProvider())
	if c.Running() {
		t.Error("new clock should not be running")
	}
	if s := c.Seconds(); s != 0 {
		t.Errorf("new clock Seconds = %v, want 0", s)
	}
}

// TestWallClockAdvances verifies that a started clock tracks elapsed time.
func TestWallClockAdvances(t *testing.T) {
	tp := newMockTimeProvider()
	c := NewWallClock(tp)

	c.Start()
	if s := c.Seconds(); s != 0 {
		t.Errorf("Seconds immediately after Start = %v, want 0", s)
	}

	tp.advance(1500 * time.Millisecond)
	if s := c.Seconds(); s != 1.5 {
		t.Errorf("Seconds after 1.5s = %v, want 1.5", s)
	}
}

// TestWallClockMonotonic verifies the clock is non-decreasing across
// consecutive reads absent a re-base.
func TestWallClockMonotonic(t *testing.T) {
	tp := newMockTimeProvider()
	c := NewWallClock(tp)
	c.Start()

	prev := c.Seconds()
	for i := 0; i < 10; i++ {
		tp.advance(33 * time.Millisecond)
		s := c.Seconds()
		if s < prev {
			t.Fatalf("clock went backward: %v after %v", s, prev)
		}
		prev = s
	}
}

// TestWallClockStartAtRebases verifies re-basing to an arbitrary
// stream offset, the behavior used after seeks and loop wraps.
func TestWallClockStartAtRebases(t *testing.T) {
	tp := newMockTimeProvider()
	c := NewWallClock(tp)

	c.Start()
	tp.advance(10 * time.Second)

	c.StartAt(0.05)
	if s := c.Seconds(); s != 0.05 {
		t.Errorf("Seconds after StartAt(0.05) = %v, want 0.05", s)
	}

	tp.advance(200 * time.Millisecond)
	if s := c.Seconds(); s != 0.25 {
		t.Errorf("Seconds 0.2s after re-base = %v, want 0.25", s)
	}
}

// TestWallClockStopFreezes verifies the clock holds its value while
// stopped and resumes from a re-base, not from the frozen value.
func TestWallClockStopFreezes(t *testing.T) {
	tp := newMockTimeProvider()
	c := NewWallClock(tp)
	c.Start()
	tp.advance(2 * time.Second)

	c.Stop()
	frozen := c.Seconds()
	if frozen != 2.0 {
		t.Fatalf("Seconds at stop = %v, want 2.0", frozen)
	}

	tp.advance(5 * time.Second)
	if s := c.Seconds(); s != frozen {
		t.Errorf("stopped clock advanced to %v, want %v", s, frozen)
	}

	c.StartAt(3.5)
	tp.advance(500 * time.Millisecond)
	if s := c.Seconds(); s != 4.0 {
		t.Errorf("Seconds after resume re-base = %v, want 4.0", s)
	}
}

// stubPosition is a PositionSource returning a fixed value.
type stubPosition struct {
	pts float64
}

func (s *stubPosition) CurrentPTS() float64 { return s.pts }

// TestAudioClockTracksPosition verifies the audio strategy mirrors the
// path's consumed position.
func TestAudioClockTracksPosition(t *testing.T) {
	pos := &stubPosition{}
	c := NewAudioClock(pos)

	if s := c.Seconds(); s != 0 {
		t.Errorf("Seconds = %v, want 0", s)
	}

	pos.pts = 1.25
	if s := c.Seconds(); s != 1.25 {
		t.Errorf("Seconds = %v, want 1.25", s)
	}
}

// TestRealTimeProviderNow verifies the real provider returns a sane
// current time.
func TestRealTimeProviderNow(t *testing.T) {
	before := time.Now()
	got := RealTimeProvider{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("RealTimeProvider.Now %v outside [%v, %v]", got, before, after)
	}
}
