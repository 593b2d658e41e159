// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Probe: configured inspector that runs ffprobe and gates on stream types
//   - Result: parsed ffprobe output containing streams and format metadata
//
// The worker hook uses Probe to confirm a path is a playable video container
// and to obtain the duration that drives progress reporting.
package ffprobe
