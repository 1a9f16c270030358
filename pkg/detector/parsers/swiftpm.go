package parsers

import (
	"io/fs"
	"regexp"
	"strings"
)

var (
	swiftPackageURL = regexp.MustCompile(`\.package\s*\(\s*url:\s*"([^"]+)"`)
	swiftDepLists   = regexp.MustCompile(`(?s)dependencies:\s*\[(.*?)\]`)
	swiftQuotedName = regexp.MustCompile(`"([^"]+)"`)
)

// swiftPMParser reads Package.swift-shaped manifests. It is a pattern scan,
// not a Swift parser: package identity comes from the last path segment of
// .package(url:) declarations and from quoted literals inside target
// dependency lists. The format has no devDependencies concept.
type swiftPMParser struct{}

func (swiftPMParser) Parse(fsys fs.FS, path string) *DependencyMap {
	data := readFile(fsys, path)
	if data == nil {
		return nil
	}
	content := string(data)

	deps := NewDependencyMap()
	for _, m := range swiftPackageURL.FindAllStringSubmatch(content, -1) {
		if name := packageNameFromURL(m[1]); name != "" {
			deps.Dependencies[name] = ""
		}
	}
	for _, list := range swiftDepLists.FindAllStringSubmatch(content, -1) {
		for _, q := range swiftQuotedName.FindAllStringSubmatch(list[1], -1) {
			name := strings.ToLower(q[1])
			// skip URLs and version literals that share the brackets
			if strings.Contains(name, "/") || looksLikeVersion(name) {
				continue
			}
			deps.Dependencies[name] = ""
		}
	}
	return deps
}

func looksLikeVersion(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

func packageNameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return strings.ToLower(url[idx+1:])
}
