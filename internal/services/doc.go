// Package services defines shared utilities consumed by the hook runners and
// the standalone pipeline driver.
//
// It provides context helpers that stamp file paths, hook names, and
// correlation identifiers for logging, plus structured error markers and the
// Wrap helper that keep failure messages uniform across hooks.
package services
