// ABOUTME: Package documentation for the wav package
// ABOUTME: RIFF/WAVE container parsing and 16-bit PCM encoding
// Package wav parses RIFF/WAVE containers into canonical audio buffers
// and writes buffers back out as 16-bit PCM files.
//
// The parser accepts integer PCM and IEEE-float data in mono or stereo
// at 8/16/24/32 bits per sample. The extensible format code (0xFFFE) is
// accepted at the container level but its subformat GUID is not
// inspected; such files are treated as plain integer PCM. Failures are
// classified with the sentinel errors in the audio package.
package wav
