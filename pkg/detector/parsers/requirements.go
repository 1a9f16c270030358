package parsers

import (
	"bufio"
	"bytes"
	"io/fs"
	"regexp"
	"strings"
)

// requirementLine matches "name", "name==1.0", "name >= 2.1", etc. The name
// may carry an extras suffix ("uvicorn[standard]") which is dropped.
var requirementLine = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)(?:\[[^\]]*\])?\s*([=!<>~^].*)?$`)

// requirementsParser reads requirements.txt-shaped manifests: one dependency
// per line, optionally followed by a version comparison.
type requirementsParser struct{}

func (requirementsParser) Parse(fsys fs.FS, path string) *DependencyMap {
	data := readFile(fsys, path)
	if data == nil {
		return nil
	}

	deps := NewDependencyMap()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// pip directives like "-r other.txt" or "--index-url" are not deps.
		if strings.HasPrefix(line, "-") {
			continue
		}
		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		m := requirementLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		deps.Dependencies[name] = strings.TrimSpace(m[2])
	}
	return deps
}
