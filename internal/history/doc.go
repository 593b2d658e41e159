// Package history persists an append-only ledger of subtitle sync outcomes
// in SQLite. Each scan or sync records an event; the ledger feeds the
// `subsync history` command and is never consulted to decide whether a file
// needs processing (the per-directory sync record owns that).
package history
