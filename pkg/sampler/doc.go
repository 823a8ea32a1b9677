// ABOUTME: Package documentation for the sampler package
// ABOUTME: Real-time sample playback with independent speed and pitch
// Package sampler implements a real-time sample-playback engine: it
// reproduces a loaded buffer at independently configurable speed and
// pitch, in three loop modes, with selectable interpolation quality.
//
// Two roles interact with a Player. Control code (any goroutine) loads
// files, edits parameters, and issues transport commands. Exactly one
// audio goroutine calls the Process* methods at the device cadence;
// that path is lock-free and allocation-free. Loads block behind a
// mutex and become visible to the audio path through a single atomic
// buffer swap, so processing always sees either the previous buffer or
// the fully committed new one.
//
//	p := sampler.New()
//	if err := p.LoadFile("kick.wav"); err != nil { ... }
//	p.SetSpeed(0.5)
//	p.SetLoopMode(sampler.LoopPingPong)
//	p.Play()
//
//	// In the audio callback:
//	left, right := p.ProcessSampleStereo()
package sampler
