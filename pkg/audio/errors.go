// ABOUTME: Error taxonomy for load operations
// ABOUTME: Sentinel errors reported synchronously by loaders, never by playback
package audio

import "errors"

// Load operations classify failures into these sentinels, wrapped with
// context via fmt.Errorf("%w: ..."). Callers match with errors.Is.
// Playback itself never fails: processing an unloaded or out-of-range
// engine yields silence instead of an error.
var (
	ErrFileNotFound      = errors.New("file not found or cannot be opened")
	ErrInvalidFormat     = errors.New("invalid RIFF/WAVE format")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrCorruptedData     = errors.New("corrupted or truncated data")
	ErrOutOfMemory       = errors.New("memory allocation refused")
	ErrReadError         = errors.New("i/o error during file reading")
	ErrInvalidState      = errors.New("invalid operation for current state")
	ErrInvalidParameter  = errors.New("invalid parameter value")
)
