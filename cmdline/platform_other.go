//go:build !windows

package cmdline

// '/' is a path separator only.
const defaultSlashPrefix = false
