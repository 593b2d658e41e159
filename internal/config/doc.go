// Package config loads, normalizes, and validates the subsync TOML
// configuration.
//
// Load resolves the config file (explicit path, then
// ~/.config/subsync/config.toml, then ./subsync.toml), decodes it over the
// repository defaults, expands ~ in path fields, and validates the result.
// A missing file is not an error; defaults apply.
package config
