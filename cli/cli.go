// Package cli holds link-time version variables kept for external build
// scripts, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/scribe/cli.Version=1.2.3' -X 'github.com/flarebyte/scribe/cli.Date=2026-10-17'"
package cli

var (
	Version string
	Date    string
)
