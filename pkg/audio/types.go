// ABOUTME: Canonical audio buffer type
// ABOUTME: Immutable interleaved float32 samples plus source metadata
package audio

// FallbackSampleRate replaces zero or negative sample rates wherever
// one is supplied, so rate math never divides by zero.
const FallbackSampleRate = 44100

// Buffer holds decoded audio in canonical form: normalized float32
// samples in roughly [-1, 1], channels interleaved frame by frame.
// A Buffer is built once by a loader and never mutated afterwards, so
// it may be read concurrently without locking.
type Buffer struct {
	Data       []float32 // interleaved samples, len == Frames*Channels
	Channels   int       // 1 or 2
	Frames     int       // sample frames (one frame spans all channels)
	SampleRate int       // source rate in Hz
	BitDepth   int       // source bits per sample (8, 16, 24, 32)
}

// Sample returns the sample at frame/channel, or 0 when either index
// is out of bounds. This is the read-only inspection path used by
// visualization and slicing layers.
func (b *Buffer) Sample(frame, channel int) float32 {
	if b == nil || frame < 0 || frame >= b.Frames || channel < 0 || channel >= b.Channels {
		return 0
	}
	return b.Data[frame*b.Channels+channel]
}

// Duration returns the buffer length in seconds at the source rate.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate <= 0 || b.Frames == 0 {
		return 0
	}
	return float64(b.Frames) / float64(b.SampleRate)
}
