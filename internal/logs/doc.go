// Package logs reads back the structured log file for the CLI.
package logs
