// ABOUTME: Audio output using oto library
// ABOUTME: Pulls stereo frames from the engine and feeds the device as 16-bit PCM
package output

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/ebitengine/oto/v3"

	"github.com/wavkit/wavkit-go/pkg/sampler"
)

const bytesPerFrame = 4 // 2 channels × int16

// Output owns the audio device and streams the engine's output to it.
type Output struct {
	otoCtx     *oto.Context
	player     *oto.Player
	source     *sampler.Player
	sampleRate int
}

// New opens the audio device at the given rate and binds it to the
// engine. The engine's output rate is set to match so rate conversion
// happens in one place.
func New(source *sampler.Player, sampleRate int) (*Output, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	source.SetOutputSampleRate(float64(sampleRate))

	o := &Output{
		otoCtx:     ctx,
		source:     source,
		sampleRate: sampleRate,
	}
	o.player = ctx.NewPlayer(o)

	log.Printf("Audio output initialized: %dHz, 2 channels", sampleRate)

	return o, nil
}

// Start begins pulling audio from the engine. The engine decides what
// to deliver: silence while stopped or paused, samples while playing.
func (o *Output) Start() {
	o.player.Play()
}

// Close stops the stream and releases the device.
func (o *Output) Close() error {
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			return err
		}
		o.player = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
	}
	return nil
}

// Read renders the next chunk of interleaved 16-bit LE stereo PCM.
// oto calls this from its own goroutine; the engine's processing path
// is lock-free, so this never blocks the device.
func (o *Output) Read(buf []byte) (int, error) {
	frames := len(buf) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	for i := 0; i < frames; i++ {
		l, r := o.source.ProcessSampleStereo()
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(pcm16(l)))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(pcm16(r)))
	}

	return frames * bytesPerFrame, nil
}

// pcm16 converts a normalized sample to a 16-bit value, clamping
// anything the gain stage pushed past full scale.
func pcm16(s float32) int16 {
	v := int32(s * 32767)
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}
