// Package match locates configuration files inside a project directory by
// exact name, nested relative path, or single-level glob.
package match

import (
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindConfigFiles returns the files under dir that match any of the given
// patterns. A pattern containing "/" is tested as a nested relative path, a
// pattern containing "*" is matched against every directory entry name, and
// anything else is an exact filename. Missing directories and filesystem
// errors yield an empty result.
func FindConfigFiles(fsys fs.FS, dir string, patterns []string) []string {
	var found []string

	var entries []fs.DirEntry
	entriesLoaded := false

	for _, pattern := range patterns {
		switch {
		case strings.Contains(pattern, "/"):
			target := path.Join(dir, pattern)
			if _, err := fs.Stat(fsys, target); err == nil {
				found = append(found, pattern)
			}
		case strings.Contains(pattern, "*"):
			if !entriesLoaded {
				entries, _ = fs.ReadDir(fsys, dir)
				entriesLoaded = true
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if ok, err := doublestar.Match(pattern, entry.Name()); err == nil && ok {
					found = append(found, entry.Name())
				}
			}
		default:
			if _, err := fs.Stat(fsys, path.Join(dir, pattern)); err == nil {
				found = append(found, pattern)
			}
		}
	}
	return found
}

// AnyExists reports whether at least one pattern matches under dir.
func AnyExists(fsys fs.FS, dir string, patterns []string) bool {
	return len(FindConfigFiles(fsys, dir, patterns)) > 0
}

// BatchFileExists checks a set of paths in one pass and reports existence
// per path. Filesystem errors read as "absent".
func BatchFileExists(fsys fs.FS, paths []string) map[string]bool {
	result := make(map[string]bool, len(paths))
	for _, p := range paths {
		_, err := fs.Stat(fsys, p)
		result[p] = err == nil
	}
	return result
}
