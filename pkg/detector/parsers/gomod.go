package parsers

import (
	"bufio"
	"bytes"
	"io/fs"
	"strings"
)

// goModParser reads go.mod require directives. Keys are the lower-cased last
// path segment of each module path ("github.com/gin-gonic/gin" → "gin").
type goModParser struct{}

func (goModParser) Parse(fsys fs.FS, path string) *DependencyMap {
	data := readFile(fsys, path)
	if data == nil {
		return nil
	}

	deps := NewDependencyMap()
	inBlock := false
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "require (":
			inBlock = true
			continue
		case inBlock && line == ")":
			inBlock = false
			continue
		}

		var spec string
		if inBlock {
			spec = line
		} else if rest, ok := strings.CutPrefix(line, "require "); ok {
			spec = rest
		} else {
			continue
		}

		fields := strings.Fields(spec)
		if len(fields) < 2 || strings.HasPrefix(fields[0], "//") {
			continue
		}
		modPath := fields[0]
		name := modPath
		if idx := strings.LastIndex(modPath, "/"); idx >= 0 {
			name = modPath[idx+1:]
		}
		// versioned module suffix (".../v2") is not a package name
		if cut := strings.LastIndex(modPath, "/"); cut >= 0 && isMajorSuffix(name) {
			trimmed := modPath[:cut]
			name = trimmed
			if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
				name = trimmed[idx+1:]
			}
		}
		deps.Dependencies[strings.ToLower(name)] = fields[1]
	}
	return deps
}

func isMajorSuffix(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, c := range segment[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
