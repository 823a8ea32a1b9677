// ABOUTME: WAV encoder for canonical buffers
// ABOUTME: Writes 16-bit PCM files via go-audio/wav
package wav

import (
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/wavkit/wavkit-go/pkg/audio"
)

// Encode writes buf to w as a 16-bit integer PCM WAV file, regardless
// of the buffer's source bit depth. Samples outside [-1, 1] are
// hard-clipped.
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if buf == nil || buf.Frames == 0 || len(buf.Data) == 0 {
		return fmt.Errorf("%w: nothing to encode", audio.ErrInvalidParameter)
	}

	rate := buf.SampleRate
	if rate <= 0 {
		rate = audio.FallbackSampleRate
	}

	enc := gowav.NewEncoder(w, rate, 16, buf.Channels, formatPCM)

	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  rate,
		},
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: 16,
	}
	// Scale by 32768 to mirror the decoder, then clamp the one value
	// (+1.0) that would overflow.
	for i, s := range buf.Data {
		v := int(math.Round(float64(s) * 32768))
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		intBuf.Data[i] = v
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("%w: %v", audio.ErrReadError, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", audio.ErrReadError, err)
	}
	return nil
}

// EncodeFile writes buf as a 16-bit PCM WAV file at path.
func EncodeFile(path string, buf *audio.Buffer) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", audio.ErrInvalidParameter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", audio.ErrReadError, err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
