// ABOUTME: Tests for sample format conversion
// ABOUTME: Verifies full-scale round trips for every supported bit depth
package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestFloatFromUint8(t *testing.T) {
	cases := []struct {
		in   uint8
		want float32
	}{
		{128, 0},
		{0, -1},
		{255, (255.0 - 128.0) / 128.0},
		{192, 0.5},
	}

	for _, tc := range cases {
		if got := FloatFromUint8(tc.in); got != tc.want {
			t.Errorf("FloatFromUint8(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFloatFromInt16FullScale(t *testing.T) {
	// Positive full scale should land within one quantization step of 1.0.
	if got := FloatFromInt16(32767); math.Abs(float64(got)-1.0) > 1.0/32768.0 {
		t.Errorf("FloatFromInt16(32767) = %v, want ~1.0", got)
	}
	if got := FloatFromInt16(-32768); got != -1.0 {
		t.Errorf("FloatFromInt16(-32768) = %v, want -1.0", got)
	}
	if got := FloatFromInt16(16384); got != 0.5 {
		t.Errorf("FloatFromInt16(16384) = %v, want 0.5", got)
	}
	if got := FloatFromInt16(0); got != 0 {
		t.Errorf("FloatFromInt16(0) = %v, want 0", got)
	}
}

func TestFloatFromInt24FullScale(t *testing.T) {
	// 0x7FFFFF little-endian
	if got := FloatFromInt24(0xFF, 0xFF, 0x7F); math.Abs(float64(got)-1.0) > 1.0/8388608.0 {
		t.Errorf("FloatFromInt24(max) = %v, want ~1.0", got)
	}
	// 0x800000 is the negative extreme
	if got := FloatFromInt24(0x00, 0x00, 0x80); got != -1.0 {
		t.Errorf("FloatFromInt24(min) = %v, want -1.0", got)
	}
	// 0x400000 == 2^22 == half scale
	if got := FloatFromInt24(0x00, 0x00, 0x40); got != 0.5 {
		t.Errorf("FloatFromInt24(half) = %v, want 0.5", got)
	}
}

func TestFloatFromInt32FullScale(t *testing.T) {
	if got := FloatFromInt32(math.MaxInt32); math.Abs(float64(got)-1.0) > 1e-6 {
		t.Errorf("FloatFromInt32(max) = %v, want ~1.0", got)
	}
	if got := FloatFromInt32(math.MinInt32); got != -1.0 {
		t.Errorf("FloatFromInt32(min) = %v, want -1.0", got)
	}
	if got := FloatFromInt32(1 << 30); got != 0.5 {
		t.Errorf("FloatFromInt32(2^30) = %v, want 0.5", got)
	}
}

func TestDecodePCM16(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint16(raw[0:], uint16(int16(0)))
	binary.LittleEndian.PutUint16(raw[2:], uint16(int16(16384)))
	negHalf := int16(-16384)
	negFull := int16(-32768)
	binary.LittleEndian.PutUint16(raw[4:], uint16(negHalf))
	binary.LittleEndian.PutUint16(raw[6:], uint16(negFull))

	out, err := DecodePCM(raw, 4, 1, 16, false)
	if err != nil {
		t.Fatalf("DecodePCM failed: %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1.0}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("sample %d = %v, want %v", i, out[i], w)
		}
	}
}

func TestDecodePCM8(t *testing.T) {
	out, err := DecodePCM([]byte{128, 255, 0, 192}, 4, 1, 8, false)
	if err != nil {
		t.Fatalf("DecodePCM failed: %v", err)
	}

	want := []float32{0, (255.0 - 128.0) / 128.0, -1.0, 0.5}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("sample %d = %v, want %v", i, out[i], w)
		}
	}
}

func TestDecodePCMFloat32Passthrough(t *testing.T) {
	values := []float32{0.25, -0.75, 1.5, -0.0001}
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	out, err := DecodePCM(raw, 2, 2, 32, true)
	if err != nil {
		t.Fatalf("DecodePCM failed: %v", err)
	}

	// Float data is passed through without rescaling, even beyond [-1,1].
	for i, v := range values {
		if out[i] != v {
			t.Errorf("sample %d = %v, want %v", i, out[i], v)
		}
	}
}

func TestDecodePCM24(t *testing.T) {
	raw := []byte{
		0xFF, 0xFF, 0x7F, // max
		0x00, 0x00, 0x80, // min
	}

	out, err := DecodePCM(raw, 2, 1, 24, false)
	if err != nil {
		t.Fatalf("DecodePCM failed: %v", err)
	}
	if math.Abs(float64(out[0])-1.0) > 1.0/8388608.0 {
		t.Errorf("max sample = %v, want ~1.0", out[0])
	}
	if out[1] != -1.0 {
		t.Errorf("min sample = %v, want -1.0", out[1])
	}
}

func TestDecodePCMShortInput(t *testing.T) {
	_, err := DecodePCM(make([]byte, 5), 4, 1, 16, false)
	if !errors.Is(err, ErrReadError) {
		t.Errorf("expected ErrReadError for short input, got %v", err)
	}
}

func TestDecodePCMBadParams(t *testing.T) {
	if _, err := DecodePCM(nil, 0, 1, 16, false); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero frames, got %v", err)
	}
	if _, err := DecodePCM(make([]byte, 16), 2, 1, 12, false); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat for 12-bit, got %v", err)
	}
}
