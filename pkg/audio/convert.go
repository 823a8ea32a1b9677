// ABOUTME: Sample format conversion to normalized float32
// ABOUTME: Maps 8/16/24/32-bit integer and 32-bit float PCM into the canonical domain
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FloatFromUint8 converts an unsigned 8-bit sample (centered at 128)
// to a normalized float.
func FloatFromUint8(s uint8) float32 {
	return (float32(s) - 128.0) / 128.0
}

// FloatFromInt16 converts a signed 16-bit sample to a normalized float.
func FloatFromInt16(s int16) float32 {
	return float32(s) / 32768.0
}

// FloatFromInt24 converts a 3-byte little-endian signed 24-bit sample
// to a normalized float.
func FloatFromInt24(b0, b1, b2 byte) float32 {
	v := int32(b0) | int32(b1)<<8 | int32(b2)<<16
	if v&0x800000 != 0 {
		v |= ^int32(0xFFFFFF) // sign extend from 24 to 32 bits
	}
	return float32(v) / 8388608.0 // 2^23
}

// FloatFromInt32 converts a signed 32-bit sample to a normalized float.
func FloatFromInt32(s int32) float32 {
	return float32(float64(s) / 2147483648.0) // 2^31
}

// DecodePCM converts raw interleaved sample bytes into the canonical
// normalized-float form. isFloat selects IEEE-float passthrough for
// 32-bit data; all integer widths are rescaled to [-1, 1].
//
// The raw slice must contain at least frames*channels complete
// samples; short input fails with ErrReadError rather than producing a
// partial buffer.
func DecodePCM(raw []byte, frames, channels, bits int, isFloat bool) ([]float32, error) {
	if frames <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: frames=%d channels=%d", ErrInvalidParameter, frames, channels)
	}
	bytesPerSample := bits / 8
	if bytesPerSample < 1 || bytesPerSample > 4 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, bits)
	}

	total := frames * channels
	if len(raw) < total*bytesPerSample {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrReadError, total*bytesPerSample, len(raw))
	}

	out := make([]float32, total)
	switch {
	case isFloat && bits == 32:
		for i := 0; i < total; i++ {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		}
	case bits == 8:
		for i := 0; i < total; i++ {
			out[i] = FloatFromUint8(raw[i])
		}
	case bits == 16:
		for i := 0; i < total; i++ {
			out[i] = FloatFromInt16(int16(binary.LittleEndian.Uint16(raw[i*2:])))
		}
	case bits == 24:
		for i := 0; i < total; i++ {
			off := i * 3
			out[i] = FloatFromInt24(raw[off], raw[off+1], raw[off+2])
		}
	case bits == 32:
		for i := 0; i < total; i++ {
			out[i] = FloatFromInt32(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, bits)
	}

	return out, nil
}
