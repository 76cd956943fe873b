package cmdline

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// globEntry is one result of a wildcard walk. err is set when a directory
// on the way could not be listed.
type globEntry struct {
	path string
	err  error
}

// glob matches pattern against fsys the way filepath.Glob does, but keeps
// directories that fail to list as failed entries instead of dropping them.
func glob(fsys afero.Fs, pattern string) ([]globEntry, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	return globEntries(fsys, pattern), nil
}

func globEntries(fsys afero.Fs, pattern string) []globEntry {
	if !hasGlobMeta(pattern) {
		if _, err := fsys.Stat(pattern); err != nil {
			return nil
		}
		return []globEntry{{path: pattern}}
	}

	dir, file := filepath.Split(pattern)
	dir = cleanGlobPath(dir)
	if !hasGlobMeta(dir) {
		return globDir(fsys, dir, file, nil)
	}
	// Prevent infinite recursion
	if dir == pattern {
		return nil
	}

	var entries []globEntry
	for _, d := range globEntries(fsys, dir) {
		if d.err != nil {
			entries = append(entries, d)
			continue
		}
		entries = globDir(fsys, d.path, file, entries)
	}
	return entries
}

// globDir appends the entries of dir whose names match pattern, in
// lexical order.
func globDir(fsys afero.Fs, dir, pattern string, entries []globEntry) []globEntry {
	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() {
		return entries
	}
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return append(entries, globEntry{path: dir, err: err})
	}
	for _, fi := range infos {
		if matched, _ := filepath.Match(pattern, fi.Name()); matched {
			entries = append(entries, globEntry{path: filepath.Join(dir, fi.Name())})
		}
	}
	return entries
}

// cleanGlobPath prepares the directory part of a split pattern.
func cleanGlobPath(path string) string {
	switch path {
	case "":
		return "."
	case string(filepath.Separator):
		return path
	}
	// Keep the separator of a volume root such as C:\
	if len(path) == len(filepath.VolumeName(path))+1 {
		return path
	}
	return path[:len(path)-1]
}

func hasGlobMeta(path string) bool {
	magic := `*?[`
	if runtime.GOOS != "windows" {
		magic = `*?[\`
	}
	return strings.ContainsAny(path, magic)
}
