// Package runner drives the sync pipeline over a library tree. Files are
// handled strictly one at a time: inclusion test, command build, command
// execution, completion record. There is no queue and no concurrency; a scan
// is a single pass and the per-directory sync records carry all state between
// runs.
package runner
