// Package main hosts the subsync CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the scan and sync pipeline, the
// per-directory sync records, the history ledger, and configuration
// scaffolding. It centralizes configuration resolution and structured logging
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
