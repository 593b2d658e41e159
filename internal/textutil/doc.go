// Package textutil provides small text helpers for presenting media file
// names in logs and status output.
package textutil
