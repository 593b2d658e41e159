// Package hooks implements the three pipeline hooks subsync contributes to a
// host media pipeline.
//
// FileTest decides whether a video enters the processing queue, WorkerProcess
// builds the ffsubsync shell command for a queued video, and PostProcess
// records completion state in the per-directory sidecar. The hooks never call
// each other; the host (or internal/runner standing in for it) mediates all
// composition through the record types in types.go, whose field names mirror
// the host contract and must round-trip unchanged.
//
// No hook returns an error for anticipated failures: a failed probe, a
// missing record, or zero subtitle candidates all degrade to "do nothing to
// this file" plus a log line.
package hooks
