// ABOUTME: Package documentation for the audio package
// ABOUTME: Canonical buffer type, sample conversion, and error taxonomy
// Package audio defines the canonical decoded representation shared by
// the container parser and the playback engine.
//
// Every supported source encoding (8/16/24/32-bit integer PCM, 32-bit
// IEEE float) is converted once, at load time, into a single
// interleaved buffer of normalized float32 samples. The playback path
// only ever reads this canonical form.
package audio
