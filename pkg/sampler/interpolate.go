// ABOUTME: Sample reconstruction at fractional playhead positions
// ABOUTME: Nearest, linear, and four-point Hermite interpolation
package sampler

import "github.com/wavkit/wavkit-go/pkg/audio"

// sampleClamped reads a sample with the frame index clamped into the
// buffer. Replicating the boundary sample keeps interpolation defined
// at the very start and end regardless of loop mode.
func sampleClamped(buf *audio.Buffer, frame, channel int) float32 {
	if frame < 0 {
		frame = 0
	} else if frame >= buf.Frames {
		frame = buf.Frames - 1
	}
	return buf.Data[frame*buf.Channels+channel]
}

// interpolate reconstructs the value of one channel at position
// idx+frac using the requested quality.
func interpolate(buf *audio.Buffer, q Quality, idx int, frac float32, channel int) float32 {
	switch q {
	case QualityNone:
		return sampleClamped(buf, idx, channel)
	case QualityLinear:
		y0 := sampleClamped(buf, idx, channel)
		y1 := sampleClamped(buf, idx+1, channel)
		return y0 + frac*(y1-y0)
	default: // QualityCubic
		y0 := sampleClamped(buf, idx-1, channel)
		y1 := sampleClamped(buf, idx, channel)
		y2 := sampleClamped(buf, idx+1, channel)
		y3 := sampleClamped(buf, idx+2, channel)
		return hermite(y0, y1, y2, y3, frac)
	}
}

// hermite evaluates the four-point, third-order Hermite spline between
// y1 and y2 at t in [0, 1). At t == 0 it returns y1 exactly.
func hermite(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2.0*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	return ((a0*t+a1)*t+a2)*t + y1
}
