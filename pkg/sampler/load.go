// ABOUTME: File and memory loading with atomic commit
// ABOUTME: Blocking control-plane operations, never for the audio goroutine
package sampler

import (
	"fmt"

	"github.com/wavkit/wavkit-go/pkg/audio"
	"github.com/wavkit/wavkit-go/pkg/wav"
)

// LoadFile reads, parses, and converts a WAV file, then commits it as
// the active buffer. Blocking: call from a control goroutine, never
// the audio path. On failure the previously loaded buffer (if any)
// stays intact and playable.
//
// Concurrent loads are serialized; the last one to commit wins.
func (p *Player) LoadFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", audio.ErrInvalidParameter)
	}

	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	buf, err := wav.DecodeFile(path)
	if err != nil {
		return err
	}

	p.commit(&clip{buf: buf, path: path})
	return nil
}

// LoadFromMemory parses WAV data held in memory and commits it as the
// active buffer. Same contract as LoadFile.
func (p *Player) LoadFromMemory(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty data", audio.ErrInvalidParameter)
	}

	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	buf, err := wav.Decode(data)
	if err != nil {
		return err
	}

	p.commit(&clip{buf: buf})
	return nil
}

// LoadFileAsync runs LoadFile on its own goroutine and delivers the
// result on the returned channel (buffered, so it never blocks the
// loader). Playback keeps using the previous buffer until the new one
// commits.
func (p *Player) LoadFileAsync(path string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- p.LoadFile(path)
	}()
	return done
}

// Unload drops the active buffer and stops playback.
func (p *Player) Unload() {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	p.clip.Store(nil)
	p.state.Store(int32(Stopped))
	p.pos.Store(0)
	p.dir.Store(1)
}

// commit publishes a fully decoded clip to the audio path in one
// atomic swap and rewinds the transport. Callers hold loadMu.
func (p *Player) commit(c *clip) {
	p.clip.Store(c)
	p.state.Store(int32(Stopped))
	p.resetPosition(c)
}
