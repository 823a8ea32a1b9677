// ABOUTME: Tests for the canonical buffer type
// ABOUTME: Covers indexed access bounds and duration math
package audio

import "testing"

func TestBufferSample(t *testing.T) {
	buf := &Buffer{
		Data:       []float32{0.1, 0.2, 0.3, 0.4},
		Channels:   2,
		Frames:     2,
		SampleRate: 44100,
		BitDepth:   16,
	}

	if got := buf.Sample(0, 0); got != 0.1 {
		t.Errorf("Sample(0,0) = %v, want 0.1", got)
	}
	if got := buf.Sample(1, 1); got != 0.4 {
		t.Errorf("Sample(1,1) = %v, want 0.4", got)
	}
}

func TestBufferSampleOutOfBounds(t *testing.T) {
	buf := &Buffer{
		Data:       []float32{0.5},
		Channels:   1,
		Frames:     1,
		SampleRate: 44100,
	}

	cases := []struct {
		name           string
		frame, channel int
	}{
		{"negative frame", -1, 0},
		{"frame past end", 1, 0},
		{"negative channel", 0, -1},
		{"channel past end", 0, 1},
	}

	for _, tc := range cases {
		if got := buf.Sample(tc.frame, tc.channel); got != 0 {
			t.Errorf("%s: Sample(%d,%d) = %v, want 0", tc.name, tc.frame, tc.channel, got)
		}
	}
}

func TestBufferSampleNil(t *testing.T) {
	var buf *Buffer
	if got := buf.Sample(0, 0); got != 0 {
		t.Errorf("nil buffer Sample = %v, want 0", got)
	}
	if got := buf.Duration(); got != 0 {
		t.Errorf("nil buffer Duration = %v, want 0", got)
	}
}

func TestBufferDuration(t *testing.T) {
	buf := &Buffer{
		Data:       make([]float32, 22050),
		Channels:   1,
		Frames:     22050,
		SampleRate: 44100,
	}

	if got := buf.Duration(); got != 0.5 {
		t.Errorf("Duration = %v, want 0.5", got)
	}
}

func TestBufferDurationZeroRate(t *testing.T) {
	buf := &Buffer{Data: make([]float32, 10), Channels: 1, Frames: 10}
	if got := buf.Duration(); got != 0 {
		t.Errorf("Duration with zero rate = %v, want 0", got)
	}
}
