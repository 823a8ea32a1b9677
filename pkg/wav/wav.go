// ABOUTME: RIFF/WAVE container parser
// ABOUTME: Walks chunks, validates format, converts payload to the canonical buffer
package wav

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/wavkit/wavkit-go/pkg/audio"
)

// Audio format codes from the fmt chunk.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// maxLoadBytes caps whole-file loads. Files larger than memory are a
// non-goal; anything past this is refused up front instead of letting
// the allocator kill the process.
const maxLoadBytes = 1 << 31

// fmtChunk mirrors the 16-byte core of the "fmt " chunk.
type fmtChunk struct {
	audioFormat   uint16
	channels      uint16
	sampleRate    uint32
	byteRate      uint32
	blockAlign    uint16
	bitsPerSample uint16
}

// Decode parses a complete WAV file held in memory and converts its
// payload into a canonical buffer. Unknown chunks are skipped with
// even-byte padding. The extensible format code is accepted without
// inspecting the subformat GUID, so a non-PCM extensible file would be
// misread as PCM; this matches the reference behavior.
func Decode(data []byte) (*audio.Buffer, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a RIFF header", audio.ErrInvalidFormat, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: missing RIFF/WAVE tags", audio.ErrInvalidFormat)
	}

	var (
		f        fmtChunk
		haveFmt  bool
		haveData bool
		dataOff  int64
		dataSize int64
	)

	size := int64(len(data))
	offset := int64(12)

scan:
	for offset+8 <= size && (!haveFmt || !haveData) {
		tag := string(data[offset : offset+4])
		chunkSize := int64(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		offset += 8

		switch tag {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("%w: fmt chunk is %d bytes", audio.ErrInvalidFormat, chunkSize)
			}
			if offset+16 > size {
				return nil, fmt.Errorf("%w: fmt chunk overruns file", audio.ErrCorruptedData)
			}
			f.audioFormat = binary.LittleEndian.Uint16(data[offset:])
			f.channels = binary.LittleEndian.Uint16(data[offset+2:])
			f.sampleRate = binary.LittleEndian.Uint32(data[offset+4:])
			f.byteRate = binary.LittleEndian.Uint32(data[offset+8:])
			f.blockAlign = binary.LittleEndian.Uint16(data[offset+12:])
			f.bitsPerSample = binary.LittleEndian.Uint16(data[offset+14:])
			offset += chunkSize + (chunkSize & 1)
			haveFmt = true

		case "data":
			dataSize = chunkSize
			dataOff = offset
			haveData = true
			break scan

		default:
			// Chunks are word-aligned; odd sizes carry a pad byte.
			offset += chunkSize + (chunkSize & 1)
		}
	}

	if !haveFmt || !haveData {
		return nil, fmt.Errorf("%w: missing fmt or data chunk", audio.ErrInvalidFormat)
	}

	if f.audioFormat != formatPCM && f.audioFormat != formatIEEEFloat && f.audioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: audio format code %d", audio.ErrUnsupportedFormat, f.audioFormat)
	}
	if f.channels == 0 || f.channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedFormat, f.channels)
	}
	bits := int(f.bitsPerSample)
	if bits != 8 && bits != 16 && bits != 24 && bits != 32 {
		return nil, fmt.Errorf("%w: %d bits per sample", audio.ErrUnsupportedFormat, bits)
	}

	channels := int(f.channels)
	bytesPerFrame := int64(bits/8) * int64(channels)
	frames := dataSize / bytesPerFrame
	if frames == 0 {
		return nil, fmt.Errorf("%w: data chunk holds no complete frames", audio.ErrCorruptedData)
	}
	if dataOff+dataSize > size {
		return nil, fmt.Errorf("%w: data chunk overruns file", audio.ErrCorruptedData)
	}
	if frames*int64(channels)*4 > maxLoadBytes {
		return nil, fmt.Errorf("%w: %d frames", audio.ErrOutOfMemory, frames)
	}

	isFloat := f.audioFormat == formatIEEEFloat
	samples, err := audio.DecodePCM(data[dataOff:dataOff+dataSize], int(frames), channels, bits, isFloat)
	if err != nil {
		return nil, err
	}

	rate := int(f.sampleRate)
	if rate <= 0 {
		rate = audio.FallbackSampleRate
	}

	return &audio.Buffer{
		Data:       samples,
		Channels:   channels,
		Frames:     int(frames),
		SampleRate: rate,
		BitDepth:   bits,
	}, nil
}

// DecodeFile reads a WAV file from disk and decodes it. This blocks on
// file I/O; call it off the audio path.
func DecodeFile(path string) (*audio.Buffer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", audio.ErrInvalidParameter)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", audio.ErrFileNotFound, path)
	}
	if fi.Size() > maxLoadBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", audio.ErrOutOfMemory, path, fi.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrReadError, err)
	}

	return Decode(data)
}
