// ABOUTME: Playhead advancement and loop-boundary policies
// ABOUTME: Combines rate ratio, speed, pitch, reverse, and ping-pong direction
package sampler

import "github.com/wavkit/wavkit-go/pkg/audio"

// effectiveRate is the net per-tick advance through the buffer:
// (source rate / output rate) × speed × pitch.
func (p *Player) effectiveRate(buf *audio.Buffer) float64 {
	src := float64(buf.SampleRate)
	if src <= 0 {
		src = audio.FallbackSampleRate
	}
	out := p.outputRate.Load()
	ratio := 1.0
	if out > 0 {
		ratio = src / out
	}
	return ratio * p.speed.Load() * p.pitch.Load()
}

// advance moves the playhead by one tick and applies the boundary
// policy for the active loop mode.
func (p *Player) advance(buf *audio.Buffer) {
	rate := p.effectiveRate(buf)
	loop := LoopMode(p.loop.Load())
	rev := p.reverse.Load()
	dir := p.dir.Load()

	delta := rate
	if rev {
		delta = -delta
	}
	if loop == LoopPingPong {
		delta *= float64(dir)
	}

	pos := p.pos.Load() + delta
	frames := float64(buf.Frames)

	switch loop {
	case LoopOff:
		if pos < 0 || pos >= frames {
			p.state.Store(int32(Stopped))
			pos = clamp(pos, 0, frames-1)
		}

	case LoopForward:
		// The per-tick delta is always far smaller than the buffer, so
		// repeated wrap steps terminate immediately in practice.
		if rev {
			for pos < 0 {
				pos += frames
			}
		} else {
			for pos >= frames {
				pos -= frames
			}
		}

	case LoopPingPong:
		// A true mirror, not a wrap: the overshoot reflects back into
		// the buffer and the travel direction flips.
		maxPos := frames - 1
		if pos < 0 {
			pos = -pos
			p.dir.Store(-dir)
		} else if pos > maxPos {
			pos = maxPos - (pos - maxPos)
			p.dir.Store(-dir)
		}
	}

	p.pos.Store(pos)
}
