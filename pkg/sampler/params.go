// ABOUTME: Playback parameter types and atomic cells
// ABOUTME: Enums for state, loop mode, and interpolation quality
package sampler

import (
	"math"
	"sync/atomic"
)

// State is the transport state of a Player.
type State int32

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// LoopMode selects the boundary policy applied when the playhead
// leaves the buffer.
type LoopMode int32

const (
	// LoopOff plays once and stops at the boundary.
	LoopOff LoopMode = iota
	// LoopForward wraps the playhead modulo the buffer length.
	LoopForward
	// LoopPingPong mirrors the playhead at each boundary and reverses
	// the travel direction.
	LoopPingPong
)

func (m LoopMode) String() string {
	switch m {
	case LoopOff:
		return "off"
	case LoopForward:
		return "forward"
	case LoopPingPong:
		return "pingpong"
	default:
		return "unknown"
	}
}

// Quality selects the interpolation used to reconstruct samples at
// fractional playhead positions.
type Quality int32

const (
	// QualityNone returns the nearest stored sample.
	QualityNone Quality = iota
	// QualityLinear blends the two surrounding samples.
	QualityLinear
	// QualityCubic uses four-point Hermite interpolation.
	QualityCubic
)

func (q Quality) String() string {
	switch q {
	case QualityNone:
		return "none"
	case QualityLinear:
		return "linear"
	case QualityCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Parameter ranges. Setters clamp instead of rejecting.
const (
	minRatio  = 0.01
	maxRatio  = 100.0
	minVolume = 0.0
	maxVolume = 10.0
)

// atomicFloat64 is a lock-free float cell. sync/atomic has no float
// types, so the value travels as its bit pattern.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func (a *atomicFloat64) Load() float64 {
	return math.Float64frombits(a.bits.Load())
}

func (a *atomicFloat64) Store(v float64) {
	a.bits.Store(math.Float64bits(v))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
