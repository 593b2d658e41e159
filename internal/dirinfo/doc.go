// Package dirinfo persists per-directory bookkeeping for subsync.
//
// Each media directory gets one JSON sidecar file (.subsync.json) holding
// named sections of key/value entries, written atomically via temp-file
// rename and guarded by an advisory file lock so concurrent writers cannot
// corrupt the sidecar. The store is scoped to a single directory: open one
// DirectoryInfo per directory, mutate it, then Save.
//
// A missing or malformed sidecar is not fatal; the store starts empty and
// lookups report ErrNotFound.
package dirinfo
