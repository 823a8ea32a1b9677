// ABOUTME: The playback engine: transport state machine and processing entry points
// ABOUTME: Lock-free audio path over an atomically swapped immutable buffer
package sampler

import (
	"sync"
	"sync/atomic"

	"github.com/wavkit/wavkit-go/pkg/audio"
)

// clip bundles a committed buffer with its source path. The audio path
// loads the pointer once per call, so it always sees a consistent pair.
type clip struct {
	buf  *audio.Buffer
	path string
}

// Player reproduces a loaded sample buffer with independent speed and
// pitch control, three loop modes, and selectable interpolation.
//
// All methods are safe for concurrent use. Load operations block and
// belong on a control goroutine; the Process* methods are lock-free
// and meant for the audio goroutine. Parameters are individual atomic
// cells: two fields changed "simultaneously" from another goroutine
// may be observed as a transient mix of old and new values.
type Player struct {
	// Control plane: serializes loads and unloads. Never touched by
	// the audio path.
	loadMu sync.Mutex

	// Data plane: read every sample tick.
	clip    atomic.Pointer[clip]
	pos     atomicFloat64 // fractional frame index
	state   atomic.Int32
	loop    atomic.Int32
	quality atomic.Int32
	reverse atomic.Bool
	dir     atomic.Int32 // ping-pong travel sign, +1 or -1

	outputRate atomicFloat64
	speed      atomicFloat64
	pitch      atomicFloat64
	volume     atomicFloat64
}

// New returns a stopped Player with nothing loaded: unity speed,
// pitch, and volume, cubic interpolation, looping off.
func New() *Player {
	p := &Player{}
	p.outputRate.Store(audio.FallbackSampleRate)
	p.speed.Store(1)
	p.pitch.Store(1)
	p.volume.Store(1)
	p.quality.Store(int32(QualityCubic))
	p.dir.Store(1)
	return p
}

//
// Transport. Invalid combinations (Play with nothing loaded, Stop
// twice) are silently ignored: transport controls are called
// speculatively from UIs.
//

// Play starts or resumes playback. No-op when nothing is loaded.
func (p *Player) Play() {
	if p.IsLoaded() {
		p.state.Store(int32(Playing))
	}
}

// Pause halts playback, keeping the playhead where it is.
func (p *Player) Pause() {
	p.state.Store(int32(Paused))
}

// Stop halts playback and rewinds the playhead to the start, or to the
// last frame when reverse is set. The ping-pong direction is re-armed
// to match the reverse flag.
func (p *Player) Stop() {
	p.state.Store(int32(Stopped))
	p.resetPosition(p.clip.Load())
}

// resetPosition rewinds to the natural starting frame for the current
// reverse flag.
func (p *Player) resetPosition(c *clip) {
	if p.reverse.Load() && c != nil && c.buf.Frames > 0 {
		p.pos.Store(float64(c.buf.Frames - 1))
		p.dir.Store(-1)
		return
	}
	p.pos.Store(0)
	p.dir.Store(1)
}

// Seek moves the playhead to a normalized position in [0, 1]. Values
// outside the range are clamped. The transport state is unchanged.
func (p *Player) Seek(normalized float64) {
	c := p.clip.Load()
	if c == nil || c.buf.Frames == 0 {
		return
	}
	p.pos.Store(clamp(normalized, 0, 1) * float64(c.buf.Frames-1))
}

// SeekToFrame moves the playhead to a frame index, clamped into the
// buffer. The transport state is unchanged.
func (p *Player) SeekToFrame(frame int) {
	c := p.clip.Load()
	if c == nil || c.buf.Frames == 0 {
		return
	}
	if frame < 0 {
		frame = 0
	} else if frame >= c.buf.Frames {
		frame = c.buf.Frames - 1
	}
	p.pos.Store(float64(frame))
}

//
// Parameter setters. Out-of-range inputs clamp to the nearest bound.
//

// SetOutputSampleRate sets the host output rate in Hz. Zero or
// negative rates fall back to 44100 so rate math stays defined.
func (p *Player) SetOutputSampleRate(rate float64) {
	if rate <= 0 {
		rate = audio.FallbackSampleRate
	}
	p.outputRate.Store(rate)
}

// SetSpeed sets the tempo multiplier (1.0 = normal), clamped to
// [0.01, 100].
func (p *Player) SetSpeed(speed float64) {
	p.speed.Store(clamp(speed, minRatio, maxRatio))
}

// SetPitch sets the pitch multiplier (1.0 = original, 2.0 = octave
// up), clamped to [0.01, 100]. Speed and pitch combine multiplicatively
// into one read rate; this is plain resampling, not a time-stretch.
func (p *Player) SetPitch(pitch float64) {
	p.pitch.Store(clamp(pitch, minRatio, maxRatio))
}

// SetVolume sets the output gain (1.0 = unity), clamped to [0, 10].
func (p *Player) SetVolume(volume float64) {
	p.volume.Store(clamp(volume, minVolume, maxVolume))
}

// SetReverse flips the playback direction. Changing it while stopped
// also rewinds the playhead to the new natural start.
func (p *Player) SetReverse(reverse bool) {
	was := p.reverse.Swap(reverse)
	if was != reverse && p.State() == Stopped {
		p.resetPosition(p.clip.Load())
	}
}

// SetLoopMode selects the boundary policy.
func (p *Player) SetLoopMode(mode LoopMode) {
	if mode < LoopOff || mode > LoopPingPong {
		mode = LoopOff
	}
	p.loop.Store(int32(mode))
}

// SetInterpolationQuality selects the reconstruction quality.
func (p *Player) SetInterpolationQuality(q Quality) {
	if q < QualityNone || q > QualityCubic {
		q = QualityCubic
	}
	p.quality.Store(int32(q))
}

//
// Getters.
//

func (p *Player) State() State                  { return State(p.state.Load()) }
func (p *Player) IsPlaying() bool               { return p.State() == Playing }
func (p *Player) OutputSampleRate() float64     { return p.outputRate.Load() }
func (p *Player) Speed() float64                { return p.speed.Load() }
func (p *Player) Pitch() float64                { return p.pitch.Load() }
func (p *Player) Volume() float64               { return p.volume.Load() }
func (p *Player) Reverse() bool                 { return p.reverse.Load() }
func (p *Player) LoopMode() LoopMode            { return LoopMode(p.loop.Load()) }
func (p *Player) InterpolationQuality() Quality { return Quality(p.quality.Load()) }

// IsLoaded reports whether a buffer is committed.
func (p *Player) IsLoaded() bool {
	return p.clip.Load() != nil
}

// Path returns the source path of the loaded file, or "" for memory
// loads and unloaded players.
func (p *Player) Path() string {
	if c := p.clip.Load(); c != nil {
		return c.path
	}
	return ""
}

// Frames returns the loaded frame count, or 0.
func (p *Player) Frames() int {
	if c := p.clip.Load(); c != nil {
		return c.buf.Frames
	}
	return 0
}

// Channels returns the loaded channel count, or 0.
func (p *Player) Channels() int {
	if c := p.clip.Load(); c != nil {
		return c.buf.Channels
	}
	return 0
}

// SourceSampleRate returns the loaded file's rate in Hz, or 0.
func (p *Player) SourceSampleRate() int {
	if c := p.clip.Load(); c != nil {
		return c.buf.SampleRate
	}
	return 0
}

// BitDepth returns the loaded file's bits per sample, or 0.
func (p *Player) BitDepth() int {
	if c := p.clip.Load(); c != nil {
		return c.buf.BitDepth
	}
	return 0
}

// Duration returns the loaded length in seconds at the source rate.
func (p *Player) Duration() float64 {
	if c := p.clip.Load(); c != nil {
		return c.buf.Duration()
	}
	return 0
}

// Position returns the playhead as a normalized value in [0, 1].
func (p *Player) Position() float64 {
	c := p.clip.Load()
	if c == nil || c.buf.Frames <= 1 {
		return 0
	}
	return p.pos.Load() / float64(c.buf.Frames-1)
}

// PositionFrames returns the fractional playhead position in frames.
// Slicing and visualization layers poll this once per tick.
func (p *Player) PositionFrames() float64 {
	return p.pos.Load()
}

// Sample returns the stored sample at frame/channel for read-only
// inspection, or 0 when out of bounds or unloaded.
func (p *Player) Sample(frame, channel int) float32 {
	if c := p.clip.Load(); c != nil {
		return c.buf.Sample(frame, channel)
	}
	return 0
}

// Data returns the canonical interleaved buffer, or nil. Callers must
// treat it as read-only; it is shared with the audio path.
func (p *Player) Data() []float32 {
	if c := p.clip.Load(); c != nil {
		return c.buf.Data
	}
	return nil
}

//
// Processing. Real-time safe: no locks, no allocation.
//

// ProcessSample renders the next mono sample and advances the
// playhead. Stereo sources are mixed to mono. Returns 0 when stopped,
// paused, or unloaded.
func (p *Player) ProcessSample() float32 {
	c := p.clip.Load()
	if c == nil || State(p.state.Load()) != Playing {
		return 0
	}

	pos := p.pos.Load()
	idx := int(pos)
	frac := float32(pos - float64(idx))
	q := Quality(p.quality.Load())

	var s float32
	if c.buf.Channels == 1 {
		s = interpolate(c.buf, q, idx, frac, 0)
	} else {
		l := interpolate(c.buf, q, idx, frac, 0)
		r := interpolate(c.buf, q, idx, frac, 1)
		s = (l + r) * 0.5
	}

	p.advance(c.buf)
	return s * float32(p.volume.Load())
}

// ProcessSampleStereo renders the next stereo frame and advances the
// playhead. Mono sources are duplicated to both channels. Returns
// silence when stopped, paused, or unloaded.
func (p *Player) ProcessSampleStereo() (left, right float32) {
	c := p.clip.Load()
	if c == nil || State(p.state.Load()) != Playing {
		return 0, 0
	}

	pos := p.pos.Load()
	idx := int(pos)
	frac := float32(pos - float64(idx))
	q := Quality(p.quality.Load())

	if c.buf.Channels == 1 {
		s := interpolate(c.buf, q, idx, frac, 0)
		left, right = s, s
	} else {
		left = interpolate(c.buf, q, idx, frac, 0)
		right = interpolate(c.buf, q, idx, frac, 1)
	}

	vol := float32(p.volume.Load())
	p.advance(c.buf)
	return left * vol, right * vol
}

// ProcessBuffer fills out with mono samples.
func (p *Player) ProcessBuffer(out []float32) {
	for i := range out {
		out[i] = p.ProcessSample()
	}
}

// ProcessBufferStereo fills out with interleaved stereo frames; the
// trailing odd sample of an odd-length slice is left untouched.
func (p *Player) ProcessBufferStereo(out []float32) {
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = p.ProcessSampleStereo()
	}
}

// ProcessBufferStereoSplit fills separate left and right slices,
// rendering min(len(left), len(right)) frames.
func (p *Player) ProcessBufferStereoSplit(left, right []float32) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		left[i], right[i] = p.ProcessSampleStereo()
	}
}
