// Package preflight validates the runtime environment before a scan starts:
// directory access, free space, and the external binaries the pipeline
// shells out to. The status command renders these results; the scan driver
// refuses to start when a required check fails.
package preflight
