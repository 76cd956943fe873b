//go:build windows

package cmdline

// Windows tools accept /name as well as --name.
const defaultSlashPrefix = true
